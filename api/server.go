package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"weather-forecast-service/metrics"
	"weather-forecast-service/models"
	"weather-forecast-service/service"
)

// basePath is the route prefix for all weather endpoints.
const basePath = "/api/v1/weather"

// Server is the HTTP front of the weather service.
type Server struct {
	service *service.WeatherService
	server  *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(weatherService *service.WeatherService, port int) *Server {
	s := &Server{
		service: weatherService,
	}

	router := mux.NewRouter()

	weather := router.PathPrefix(basePath).Subrouter()
	weather.HandleFunc("/forecast", s.handleGetForecast).Methods(http.MethodGet)
	weather.HandleFunc("/offline-mode", s.handleSetOfflineMode).Methods(http.MethodPost)
	weather.HandleFunc("/offline-mode", s.handleGetOfflineMode).Methods(http.MethodGet)
	weather.HandleFunc("/health", s.handleHealthCheck).Methods(http.MethodGet)

	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Middleware wraps the whole router so CORS preflights and
	// unmatched methods are covered too.
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: requestLogging(corsHeaders(router)),
	}
	return s
}

// Handler returns the server's root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	fmt.Printf("Starting API server on %s\n", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleGetForecast serves GET /forecast?city={name}.
func (s *Server) handleGetForecast(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	response, err := s.service.GetForecast(r.Context(), city)
	if err != nil {
		writeError(w, r, err)
		return
	}

	addLinks(&response, city)
	writeJSON(w, http.StatusOK, response)
}

// handleSetOfflineMode serves POST /offline-mode?enabled={true|false}.
func (s *Server) handleSetOfflineMode(w http.ResponseWriter, r *http.Request) {
	enabled, err := strconv.ParseBool(r.URL.Query().Get("enabled"))
	if err != nil {
		writeError(w, r, models.NewServiceError(models.CodeInvalidInput,
			"enabled must be true or false"))
		return
	}

	s.service.SetOfflineMode(r.Context(), enabled)

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Offline mode %s", state)
}

// handleGetOfflineMode serves GET /offline-mode.
func (s *Server) handleGetOfflineMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.OfflineMode())
}

// handleHealthCheck serves GET /health.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Weather Service is running")
}

// addLinks attaches hypermedia links to a forecast response.
func addLinks(response *models.ForecastResponse, city string) {
	response.Links = map[string]models.Link{
		"self":                {Href: basePath + "/forecast?city=" + url.QueryEscape(city)},
		"toggle-offline-mode": {Href: basePath + "/offline-mode"},
		"health":              {Href: basePath + "/health"},
	}
}
