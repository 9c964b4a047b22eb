package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"weather-forecast-service/models"
)

// errorResponse is the stable JSON error envelope. Field names are
// part of the contract.
type errorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// writeError maps an error to the envelope. INVALID_INPUT becomes 400,
// everything else 500. No internal detail leaks: only the ServiceError
// message is exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := models.ErrorCode(err)

	status := http.StatusInternalServerError
	if code == models.CodeInvalidInput {
		status = http.StatusBadRequest
	}

	message := "An unexpected error occurred"
	var serviceErr *models.ServiceError
	if errors.As(err, &serviceErr) {
		message = serviceErr.Message
	}

	log.Printf("Request failed: %s %s -> %s: %v", r.Method, r.URL.Path, code, err)

	writeJSON(w, status, errorResponse{
		Timestamp: time.Now().Format(time.RFC3339),
		Status:    status,
		ErrorCode: code,
		Message:   message,
		Path:      r.URL.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
