package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-forecast-service/cache"
	"weather-forecast-service/models"
)

type fakeProvider struct {
	name      string
	available bool
	response  models.ForecastResponse
	err       error
	calls     int
}

func (f *fakeProvider) FetchForecast(ctx context.Context, city string) (models.ForecastResponse, error) {
	f.calls++
	if f.err != nil {
		return models.ForecastResponse{}, f.err
	}
	response := f.response
	response.City = city
	return response, nil
}

func (f *fakeProvider) Available() bool { return f.available }
func (f *fakeProvider) Name() string    { return f.name }

func onlineResponse() models.ForecastResponse {
	return models.ForecastResponse{
		Country:    "GB",
		DataSource: models.DataSourceOnline,
		Forecasts:  []models.DailyForecast{{Date: "2025-06-10"}},
	}
}

func offlineResponse() models.ForecastResponse {
	return models.ForecastResponse{
		Country:    "Offline Mode",
		DataSource: models.DataSourceOffline,
		Message:    "Using cached data - API unavailable",
		Forecasts:  []models.DailyForecast{{Date: "2025-06-10"}},
	}
}

func TestGetForecastBlankCity(t *testing.T) {
	svc := New(&fakeProvider{available: true}, &fakeProvider{available: true}, cache.NewMemoryStore(), false)

	for _, city := range []string{"", "   "} {
		_, err := svc.GetForecast(context.Background(), city)
		require.Error(t, err)
		assert.Equal(t, models.CodeInvalidInput, models.ErrorCode(err))
	}
}

func TestGetForecastOnlineSuccess(t *testing.T) {
	online := &fakeProvider{name: "online", available: true, response: onlineResponse()}
	offline := &fakeProvider{name: "offline", available: true, response: offlineResponse()}
	svc := New(online, offline, cache.NewMemoryStore(), false)

	response, err := svc.GetForecast(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, models.DataSourceOnline, response.DataSource)
	assert.Equal(t, 1, online.calls)
	assert.Equal(t, 0, offline.calls)
}

func TestGetForecastServedFromCache(t *testing.T) {
	online := &fakeProvider{name: "online", available: true, response: onlineResponse()}
	svc := New(online, &fakeProvider{available: true}, cache.NewMemoryStore(), false)

	_, err := svc.GetForecast(context.Background(), "London")
	require.NoError(t, err)
	_, err = svc.GetForecast(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, 1, online.calls, "second lookup must hit the cache")
}

func TestGetForecastFallbackOnError(t *testing.T) {
	online := &fakeProvider{name: "online", available: true,
		err: models.NewServiceError(models.CodeAPIError, "upstream down")}
	offline := &fakeProvider{name: "offline", available: true, response: offlineResponse()}
	svc := New(online, offline, cache.NewMemoryStore(), false)

	response, err := svc.GetForecast(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, models.DataSourceOffline, response.DataSource)
	assert.Equal(t, "Using cached data - API unavailable", response.Message)
	assert.Equal(t, 1, online.calls)
	assert.Equal(t, 1, offline.calls)
}

func TestGetForecastFallbackWhenOnlineUnavailable(t *testing.T) {
	online := &fakeProvider{name: "online", available: false, response: onlineResponse()}
	offline := &fakeProvider{name: "offline", available: true, response: offlineResponse()}
	svc := New(online, offline, cache.NewMemoryStore(), false)

	response, err := svc.GetForecast(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, models.DataSourceOffline, response.DataSource)
	assert.Equal(t, 0, online.calls)
}

func TestGetForecastSurfacesOriginalErrorWhenFallbackFails(t *testing.T) {
	online := &fakeProvider{name: "online", available: true,
		err: models.NewServiceError(models.CodeAPIError, "upstream down")}
	offline := &fakeProvider{name: "offline", available: true,
		err: models.NewServiceError(models.CodeNoOfflineData, "no offline data")}
	svc := New(online, offline, cache.NewMemoryStore(), false)

	_, err := svc.GetForecast(context.Background(), "London")
	require.Error(t, err)
	assert.Equal(t, models.CodeAPIError, models.ErrorCode(err), "original online error must surface")
}

func TestGetForecastOfflineModeSkipsOnline(t *testing.T) {
	online := &fakeProvider{name: "online", available: true, response: onlineResponse()}
	offline := &fakeProvider{name: "offline", available: true, response: offlineResponse()}
	svc := New(online, offline, cache.NewMemoryStore(), true)

	response, err := svc.GetForecast(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, models.DataSourceOffline, response.DataSource)
	assert.Equal(t, 0, online.calls)
}

func TestGetForecastOfflineModeSurfacesMissingCity(t *testing.T) {
	offline := &fakeProvider{name: "offline", available: true,
		err: models.NewServiceError(models.CodeNoOfflineData, "no offline data available for city: unknownville")}
	svc := New(&fakeProvider{available: true}, offline, cache.NewMemoryStore(), true)

	_, err := svc.GetForecast(context.Background(), "unknownville")
	require.Error(t, err)
	assert.Equal(t, models.CodeNoOfflineData, models.ErrorCode(err))
}

func TestSetOfflineModeInvalidatesCacheBothWays(t *testing.T) {
	online := &fakeProvider{name: "online", available: true, response: onlineResponse()}
	offline := &fakeProvider{name: "offline", available: true, response: offlineResponse()}
	svc := New(online, offline, cache.NewMemoryStore(), false)
	ctx := context.Background()

	_, err := svc.GetForecast(ctx, "London")
	require.NoError(t, err)
	require.Equal(t, 1, online.calls)

	svc.SetOfflineMode(ctx, true)
	assert.True(t, svc.OfflineMode())

	_, err = svc.GetForecast(ctx, "London")
	require.NoError(t, err)
	assert.Equal(t, 1, offline.calls)

	svc.SetOfflineMode(ctx, false)
	assert.False(t, svc.OfflineMode())

	// The online entry cached before the toggles must be gone
	_, err = svc.GetForecast(ctx, "London")
	require.NoError(t, err)
	assert.Equal(t, 2, online.calls, "toggling back must have dropped the cached entry")
}
