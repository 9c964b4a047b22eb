package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"weather-forecast-service/api"
	"weather-forecast-service/cache"
	"weather-forecast-service/config"
	"weather-forecast-service/datasource"
	"weather-forecast-service/forecast"
	"weather-forecast-service/service"
	"weather-forecast-service/warnings"
)

func main() {
	// Parse command line arguments; flags override environment values
	port := flag.Int("port", 0, "Port to run the server on (overrides PORT)")
	offlineData := flag.String("offline-data", "", "Path to the offline dataset (overrides OFFLINE_DATA_FILE)")
	flag.Parse()

	// Load configuration (reads .env when present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *offlineData != "" {
		cfg.Offline.DataFile = *offlineData
	}

	if cfg.Weather.APIKey == "" {
		log.Println("Warning: no OpenWeatherMap API key configured, online fetches will fail")
	}

	engine := warnings.DefaultEngine()
	aggregator := forecast.NewAggregator()

	// Online provider, optionally rate limited
	var online datasource.Provider = datasource.NewOpenWeatherProvider(
		cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout, aggregator, engine)
	if cfg.RateLimit.Enabled {
		online = datasource.NewRateLimitedProvider(online, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		log.Println("Applied rate limiting to the online provider")
	}

	// Offline fallback provider; a load failure leaves it unavailable
	offline := datasource.NewOfflineProvider(cfg.Offline.DataFile, engine)

	// Forecast cache: Redis when configured, in-memory otherwise
	var store cache.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = cache.NewRedisStore(client)
		log.Printf("Using Redis forecast cache at %s", cfg.Redis.Addr)
	} else {
		store = cache.NewMemoryStore()
	}

	weatherService := service.New(online, offline, store, cfg.Offline.Enabled)
	server := api.NewServer(weatherService, cfg.Port)

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start the API server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdownChan
	fmt.Printf("Shutting down due to %s signal\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	fmt.Println("Shutdown complete")
}
