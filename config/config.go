package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port      int
	Weather   WeatherConfig
	Offline   OfflineConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
}

// WeatherConfig configures the upstream OpenWeatherMap client.
type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// OfflineConfig configures the static fallback dataset and the initial
// offline-mode flag.
type OfflineConfig struct {
	DataFile string
	Enabled  bool
}

// RateLimitConfig configures the token-bucket limiter applied to the
// online provider.
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// RedisConfig configures the optional Redis cache backend. The Redis
// cache is used only when Addr is non-empty.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from the environment, with a .env file as
// an optional source.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	config := &Config{
		Port: getEnvAsInt("PORT", 8080),
		Weather: WeatherConfig{
			APIKey:  getEnv("OWM_API_KEY", ""),
			BaseURL: getEnv("OWM_BASE_URL", "https://api.openweathermap.org/data/2.5"),
			Timeout: getEnvAsDuration("API_TIMEOUT", 5*time.Second),
		},
		Offline: OfflineConfig{
			DataFile: getEnv("OFFLINE_DATA_FILE", "data/offline-weather.json"),
			Enabled:  getEnvAsBool("OFFLINE_MODE", false),
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
			// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second
			RPS:   getEnvAsFloat("RATE_LIMIT_RPS", 1.0),
			Burst: getEnvAsInt("RATE_LIMIT_BURST", 5),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
