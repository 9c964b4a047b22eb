package models

import (
	"errors"
	"fmt"
)

// Stable error codes. These strings are part of the JSON contract and
// must not change.
const (
	CodeAPIError      = "API_ERROR"
	CodeNoData        = "NO_DATA"
	CodeFetchError    = "FETCH_ERROR"
	CodeNoOfflineData = "NO_OFFLINE_DATA"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternalError = "INTERNAL_ERROR"
	CodeWeatherError  = "WEATHER_ERROR"
)

// ServiceError carries a stable error code across layer boundaries.
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError with the given code and message.
func NewServiceError(code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

// WrapServiceError creates a ServiceError wrapping an underlying cause.
func WrapServiceError(code, message string, err error) *ServiceError {
	return &ServiceError{Code: code, Message: message, Err: err}
}

// ErrorCode extracts the stable code from err, defaulting to
// INTERNAL_ERROR for anything that is not a ServiceError.
func ErrorCode(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeInternalError
}
