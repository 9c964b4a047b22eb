package datasource

import (
	"context"

	"weather-forecast-service/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider with a token-bucket rate limit.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider creates a rate limited wrapper around a
// provider. rps is the maximum requests per second allowed (can be
// fractional), burst is the maximum burst size.
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchForecast fetches forecast data, respecting the rate limit. The
// wait is bounded by the request context.
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, city string) (models.ForecastResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.ForecastResponse{}, models.WrapServiceError(models.CodeAPIError,
			"rate limit wait canceled", err)
	}
	return r.provider.FetchForecast(ctx, city)
}

// Available reports the underlying provider's availability.
func (r *RateLimitedProvider) Available() bool {
	return r.provider.Available()
}

// Name returns the underlying provider's name.
func (r *RateLimitedProvider) Name() string {
	return r.provider.Name()
}

var _ Provider = (*RateLimitedProvider)(nil)
