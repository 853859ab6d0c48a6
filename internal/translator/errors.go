package translator

import (
	"errors"
	"net/http"
)

// Domain errors for translation operations.
var (
	// ErrUnavailable marks transient translation failures: model
	// transport errors, timeouts, and an open circuit breaker. Safe to
	// retry.
	ErrUnavailable = errors.New("translation unavailable")

	// ErrIntegrity marks a translation whose unresolved terminology
	// exceeds the configured tolerance. Retrying will not help.
	ErrIntegrity = errors.New("translation integrity failure")

	ErrEmptyText = errors.New("translation requires non-empty text")
)

// MapHTTPStatus maps translator domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, ErrIntegrity) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ErrEmptyText) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
