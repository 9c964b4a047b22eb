package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"weather-forecast-service/metrics"
	"weather-forecast-service/models"
)

// RedisStore keeps cached responses in Redis under a common key
// prefix, JSON-encoded. A generous TTL stops keys from leaking across
// restarts; logical invalidation still happens through Clear.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed cache on the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "forecast:",
		ttl:    24 * time.Hour,
	}
}

// Get returns the cached response for key, if present. Redis errors
// are treated as cache misses.
func (s *RedisStore) Get(ctx context.Context, key string) (models.ForecastResponse, bool) {
	data, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		metrics.CacheMisses.Inc()
		return models.ForecastResponse{}, false
	}
	if err != nil {
		log.Printf("Redis get failed for %s: %v", key, err)
		metrics.CacheMisses.Inc()
		return models.ForecastResponse{}, false
	}

	var response models.ForecastResponse
	if err := json.Unmarshal([]byte(data), &response); err != nil {
		log.Printf("Failed to unmarshal cached response for %s: %v", key, err)
		metrics.CacheMisses.Inc()
		return models.ForecastResponse{}, false
	}

	metrics.CacheHits.Inc()
	return response, true
}

// Set stores the response under key.
func (s *RedisStore) Set(ctx context.Context, key string, response models.ForecastResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		log.Printf("Failed to marshal response for %s: %v", key, err)
		return
	}
	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		log.Printf("Redis set failed for %s: %v", key, err)
	}
}

// Clear drops every cached entry under the prefix.
func (s *RedisStore) Clear(ctx context.Context) {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("Redis delete failed for %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("Redis scan failed while clearing cache: %v", err)
	}
}

// Ensure RedisStore implements the Store interface
var _ Store = (*RedisStore)(nil)
