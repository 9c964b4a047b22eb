package models

import (
	"time"
)

// DailyForecast is one calendar day of aggregated forecast data.
// Warnings are appended by the rule engine in priority order and
// contain no duplicates.
type DailyForecast struct {
	Date            string   `json:"date"`      // yyyy-MM-dd
	TempMax         float64  `json:"tempMax"`   // in Celsius
	TempMin         float64  `json:"tempMin"`   // in Celsius
	Weather         string   `json:"weather"`   // short category text
	WindSpeed       float64  `json:"windSpeed"` // daily average
	HasRain         bool     `json:"hasRain"`
	HasThunderstorm bool     `json:"hasThunderstorm"`
	Warnings        []string `json:"warnings"`
}

// AddWarning appends a warning message if it is not already present.
func (f *DailyForecast) AddWarning(message string) {
	for _, w := range f.Warnings {
		if w == message {
			return
		}
	}
	f.Warnings = append(f.Warnings, message)
}

// Link is a hypermedia link attached to a response.
type Link struct {
	Href string `json:"href"`
}

// Values of the dataSource response field.
const (
	DataSourceOnline  = "online"
	DataSourceOffline = "offline"
)

// ForecastResponse is the full forecast response for one city: up to
// three daily forecasts sorted ascending by date.
type ForecastResponse struct {
	City       string          `json:"city"`
	Country    string          `json:"country"`
	Forecasts  []DailyForecast `json:"forecasts"`
	DataSource string          `json:"dataSource"` // "online" or "offline"
	Message    string          `json:"message,omitempty"`
	Timestamp  int64           `json:"timestamp"` // epoch millis of the fetch
	Links      map[string]Link `json:"_links,omitempty"`
}

// RawSample is a single sub-daily forecast point from the upstream API,
// consumed by the aggregator and discarded.
type RawSample struct {
	Timestamp time.Time
	TempMax   float64
	TempMin   float64
	Weather   string
	WindSpeed float64
}
