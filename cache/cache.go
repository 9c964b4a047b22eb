package cache

import (
	"context"
	"fmt"
	"strings"

	"weather-forecast-service/models"
)

// Store caches fully-assembled forecast responses keyed by city and
// offline mode. Implementations must be safe for concurrent use.
// Clear drops every entry; it is called whenever the offline-mode flag
// flips so no stale cross-mode data survives.
type Store interface {
	Get(ctx context.Context, key string) (models.ForecastResponse, bool)
	Set(ctx context.Context, key string, response models.ForecastResponse)
	Clear(ctx context.Context)
}

// Key builds the cache key for a city in the given mode.
func Key(city string, offlineMode bool) string {
	return fmt.Sprintf("%s:%t", strings.ToLower(strings.TrimSpace(city)), offlineMode)
}
