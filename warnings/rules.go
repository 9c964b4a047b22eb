package warnings

import (
	"weather-forecast-service/models"
)

// Warning messages. These strings are part of the response contract.
const (
	ThunderstormWarning = "Don't step out! A Storm is brewing!"
	WindWarning         = "It's too windy, watch out!"
	HeatWarning         = "Use sunscreen lotion"
	RainWarning         = "Carry umbrella"
)

const (
	windSpeedThreshold = 10.0
	tempMaxThreshold   = 40.0
)

// DefaultRules returns the fixed warning rule set.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "thunderstorm",
			Priority: 1,
			Message:  ThunderstormWarning,
			Applies: func(f models.DailyForecast) bool {
				return f.HasThunderstorm
			},
		},
		{
			Name:     "wind",
			Priority: 2,
			Message:  WindWarning,
			Applies: func(f models.DailyForecast) bool {
				return f.WindSpeed > windSpeedThreshold
			},
		},
		{
			Name:     "heat",
			Priority: 3,
			Message:  HeatWarning,
			Applies: func(f models.DailyForecast) bool {
				return f.TempMax > tempMaxThreshold
			},
		},
		{
			Name:     "rain",
			Priority: 4,
			Message:  RainWarning,
			Applies: func(f models.DailyForecast) bool {
				return f.HasRain
			},
		},
	}
}

// DefaultEngine returns an engine loaded with the default rule set.
func DefaultEngine() *Engine {
	return NewEngine(DefaultRules()...)
}
