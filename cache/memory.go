package cache

import (
	"context"
	"sync"

	"weather-forecast-service/metrics"
	"weather-forecast-service/models"
)

// MemoryStore is a mutex-guarded in-memory response cache. Entries
// have no expiry; lifetime is bounded by mode toggles and process
// lifetime.
type MemoryStore struct {
	mutex     sync.RWMutex
	entries   map[string]models.ForecastResponse
	hitCount  int
	missCount int
}

// NewMemoryStore creates an empty in-memory cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]models.ForecastResponse),
	}
}

// Get returns the cached response for key, if present.
func (s *MemoryStore) Get(ctx context.Context, key string) (models.ForecastResponse, bool) {
	s.mutex.RLock()
	response, found := s.entries[key]
	s.mutex.RUnlock()

	s.mutex.Lock()
	if found {
		s.hitCount++
	} else {
		s.missCount++
	}
	s.mutex.Unlock()

	if found {
		metrics.CacheHits.Inc()
	} else {
		metrics.CacheMisses.Inc()
	}
	return response, found
}

// Set stores the response under key.
func (s *MemoryStore) Set(ctx context.Context, key string, response models.ForecastResponse) {
	s.mutex.Lock()
	s.entries[key] = response
	s.mutex.Unlock()
}

// Clear drops all entries.
func (s *MemoryStore) Clear(ctx context.Context) {
	s.mutex.Lock()
	s.entries = make(map[string]models.ForecastResponse)
	s.mutex.Unlock()
}

// Stats returns statistics about cache hits and misses.
func (s *MemoryStore) Stats() (hits, misses int) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.hitCount, s.missCount
}

// Ensure MemoryStore implements the Store interface
var _ Store = (*MemoryStore)(nil)
