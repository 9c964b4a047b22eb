package warnings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-forecast-service/models"
)

func TestThunderstormWarningListedFirst(t *testing.T) {
	forecast := models.DailyForecast{
		Date:            "2025-06-10",
		TempMax:         42.0,
		WindSpeed:       15.0,
		HasRain:         true,
		HasThunderstorm: true,
	}

	DefaultEngine().Annotate(&forecast)

	require.Len(t, forecast.Warnings, 4)
	assert.Equal(t, []string{
		ThunderstormWarning,
		WindWarning,
		HeatWarning,
		RainWarning,
	}, forecast.Warnings)
}

func TestAnnotateIsIdempotent(t *testing.T) {
	forecast := models.DailyForecast{
		Date:      "2025-06-10",
		WindSpeed: 12.0,
		HasRain:   true,
	}

	engine := DefaultEngine()
	engine.Annotate(&forecast)
	once := append([]string(nil), forecast.Warnings...)

	engine.Annotate(&forecast)
	assert.Equal(t, once, forecast.Warnings)
}

func TestHeatWarningAboveThreshold(t *testing.T) {
	forecast := models.DailyForecast{Date: "2025-06-10", TempMax: 42.0}
	DefaultEngine().Annotate(&forecast)
	assert.Contains(t, forecast.Warnings, HeatWarning)

	boundary := models.DailyForecast{Date: "2025-06-10", TempMax: 40.0}
	DefaultEngine().Annotate(&boundary)
	assert.NotContains(t, boundary.Warnings, HeatWarning)
}

func TestRainOnlyForecast(t *testing.T) {
	forecast := models.DailyForecast{
		Date:      "2025-06-10",
		TempMax:   18.0,
		WindSpeed: 8.0,
		HasRain:   true,
	}

	DefaultEngine().Annotate(&forecast)
	assert.Equal(t, []string{RainWarning}, forecast.Warnings)
}

func TestWindWarningBoundary(t *testing.T) {
	calm := models.DailyForecast{Date: "2025-06-10", WindSpeed: 10.0}
	DefaultEngine().Annotate(&calm)
	assert.Empty(t, calm.Warnings)

	windy := models.DailyForecast{Date: "2025-06-10", WindSpeed: 10.1}
	DefaultEngine().Annotate(&windy)
	assert.Equal(t, []string{WindWarning}, windy.Warnings)
}

func TestEngineIsOpenToExtension(t *testing.T) {
	rules := append(DefaultRules(), Rule{
		Name:     "freeze",
		Priority: 0,
		Message:  "Roads may be icy",
		Applies: func(f models.DailyForecast) bool {
			return f.TempMin < 0
		},
	})

	forecast := models.DailyForecast{
		Date:            "2025-06-10",
		TempMin:         -3.0,
		HasThunderstorm: true,
	}
	NewEngine(rules...).Annotate(&forecast)

	// Priority 0 fires before the built-in thunderstorm rule
	assert.Equal(t, []string{"Roads may be icy", ThunderstormWarning}, forecast.Warnings)
}

func TestAnnotateAll(t *testing.T) {
	forecasts := []models.DailyForecast{
		{Date: "2025-06-10", HasRain: true},
		{Date: "2025-06-11"},
	}

	DefaultEngine().AnnotateAll(forecasts)
	assert.Equal(t, []string{RainWarning}, forecasts[0].Warnings)
	assert.Empty(t, forecasts[1].Warnings)
}
