// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CacheHits counts forecast cache hits.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_cache_hits_total",
		Help: "Number of forecast cache hits.",
	})

	// CacheMisses counts forecast cache misses.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_cache_misses_total",
		Help: "Number of forecast cache misses.",
	})

	// ProviderFallbacks counts fallback hops from the online to the
	// offline provider.
	ProviderFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_provider_fallbacks_total",
		Help: "Number of fallbacks from the online to the offline provider.",
	})

	// Requests counts HTTP requests by path and status code.
	Requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_http_requests_total",
		Help: "Number of HTTP requests handled, by path and status.",
	}, []string{"path", "status"})
)

// Handler returns the Prometheus exposition endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
