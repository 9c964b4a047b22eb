package datasource

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"weather-forecast-service/models"
	"weather-forecast-service/warnings"
)

// OfflineMessage is attached to every response served from the static
// dataset.
const OfflineMessage = "Using cached data - API unavailable"

// OfflineProvider serves forecasts from a static JSON dataset loaded
// once at startup. The dataset is read-only for the process lifetime.
type OfflineProvider struct {
	engine *warnings.Engine
	data   map[string][]models.DailyForecast
}

// NewOfflineProvider loads the dataset file. Loading is best-effort:
// on failure the provider logs and reports unavailable instead of
// crashing the process.
func NewOfflineProvider(dataFile string, engine *warnings.Engine) *OfflineProvider {
	p := &OfflineProvider{
		engine: engine,
		data:   make(map[string][]models.DailyForecast),
	}
	if err := p.load(dataFile); err != nil {
		log.Printf("Warning: failed to load offline weather data from %s: %v", dataFile, err)
	}
	return p
}

func (p *OfflineProvider) load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var root map[string]struct {
		Forecasts []models.DailyForecast `json:"forecasts"`
	}
	if err := json.Unmarshal(raw, &root); err != nil {
		return err
	}

	for city, record := range root {
		p.data[CityKey(city)] = record.Forecasts
	}
	log.Printf("Loaded offline data for %d cities", len(p.data))
	return nil
}

// CityKey normalizes a city name to its offline lookup key: lower-cased
// with all whitespace stripped.
func CityKey(city string) string {
	return strings.Join(strings.Fields(strings.ToLower(city)), "")
}

// Name returns the provider name.
func (p *OfflineProvider) Name() string {
	return models.DataSourceOffline
}

// Available reports whether any offline data was loaded.
func (p *OfflineProvider) Available() bool {
	return len(p.data) > 0
}

// FetchForecast looks the city up in the preloaded dataset. Warnings
// are computed fresh on every call, never persisted from the dataset.
func (p *OfflineProvider) FetchForecast(ctx context.Context, city string) (models.ForecastResponse, error) {
	log.Printf("Fetching offline weather data for city: %s", city)

	stored, ok := p.data[CityKey(city)]
	if !ok || len(stored) == 0 {
		return models.ForecastResponse{}, models.NewServiceError(models.CodeNoOfflineData,
			"no offline data available for city: "+city)
	}

	forecasts := make([]models.DailyForecast, len(stored))
	for i, f := range stored {
		f.Warnings = nil
		forecasts[i] = f
	}
	p.engine.AnnotateAll(forecasts)

	return models.ForecastResponse{
		City:       city,
		Country:    "Offline Mode",
		Forecasts:  forecasts,
		DataSource: models.DataSourceOffline,
		Message:    OfflineMessage,
		Timestamp:  time.Now().UnixMilli(),
	}, nil
}

var _ Provider = (*OfflineProvider)(nil)
