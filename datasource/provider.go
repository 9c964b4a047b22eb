package datasource

import (
	"context"

	"weather-forecast-service/models"
)

// Provider is a data source capable of producing a forecast response
// for a city.
type Provider interface {
	// FetchForecast fetches the 3-day forecast for a city.
	FetchForecast(ctx context.Context, city string) (models.ForecastResponse, error)

	// Available reports whether the provider can currently serve data.
	Available() bool

	// Name returns the provider's name.
	Name() string
}
