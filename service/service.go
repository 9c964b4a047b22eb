// Package service coordinates provider selection, caching and the
// offline-mode flag.
package service

import (
	"context"
	"log"
	"strings"
	"sync"

	"weather-forecast-service/cache"
	"weather-forecast-service/datasource"
	"weather-forecast-service/metrics"
	"weather-forecast-service/models"
)

// WeatherService selects between the online and offline providers,
// with a single fallback hop from online to offline on failure. It
// owns the offline-mode flag; flipping the flag invalidates the whole
// cache.
type WeatherService struct {
	online  datasource.Provider
	offline datasource.Provider
	store   cache.Store

	mutex       sync.RWMutex
	offlineMode bool
}

// New creates a weather service using the given providers and cache.
func New(online, offline datasource.Provider, store cache.Store, offlineMode bool) *WeatherService {
	return &WeatherService{
		online:      online,
		offline:     offline,
		store:       store,
		offlineMode: offlineMode,
	}
}

// GetForecast returns the forecast for a city, serving from the cache
// when possible.
func (s *WeatherService) GetForecast(ctx context.Context, city string) (models.ForecastResponse, error) {
	if strings.TrimSpace(city) == "" {
		return models.ForecastResponse{}, models.NewServiceError(models.CodeInvalidInput,
			"City name cannot be empty")
	}

	offlineMode := s.OfflineMode()
	key := cache.Key(city, offlineMode)

	if response, found := s.store.Get(ctx, key); found {
		log.Printf("Serving cached forecast for city: %s (offlineMode=%t)", city, offlineMode)
		return response, nil
	}

	response, err := s.fetch(ctx, city, offlineMode)
	if err != nil {
		return models.ForecastResponse{}, err
	}

	s.store.Set(ctx, key, response)
	return response, nil
}

// fetch applies the selection policy: offline mode forces the offline
// provider; otherwise the online provider is tried once with a single
// fallback hop to offline. When the fallback also fails, the original
// online error is surfaced.
func (s *WeatherService) fetch(ctx context.Context, city string, offlineMode bool) (models.ForecastResponse, error) {
	if offlineMode {
		log.Printf("Using offline data provider for city: %s", city)
		return s.offline.FetchForecast(ctx, city)
	}

	if !s.online.Available() {
		log.Printf("Online provider unavailable, falling back to offline data for city: %s", city)
		metrics.ProviderFallbacks.Inc()
		return s.offline.FetchForecast(ctx, city)
	}

	response, err := s.online.FetchForecast(ctx, city)
	if err == nil {
		return response, nil
	}

	log.Printf("Online fetch failed for city %s, trying offline fallback: %v", city, err)
	metrics.ProviderFallbacks.Inc()
	if fallback, fallbackErr := s.offline.FetchForecast(ctx, city); fallbackErr == nil {
		return fallback, nil
	}
	return models.ForecastResponse{}, err
}

// SetOfflineMode flips the offline-mode flag and drops every cached
// entry so no stale cross-mode data survives the switch.
func (s *WeatherService) SetOfflineMode(ctx context.Context, enabled bool) {
	s.mutex.Lock()
	s.offlineMode = enabled
	s.mutex.Unlock()

	log.Printf("Switching offline mode to: %t, clearing cache", enabled)
	s.store.Clear(ctx)
}

// OfflineMode returns the current offline-mode flag.
func (s *WeatherService) OfflineMode() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.offlineMode
}
