package reports

import (
	"errors"
	"net/http"

	"github.com/kmoussa/dragoman/internal/terms"
)

// Domain errors for report operations.
var (
	ErrGenerationUnavailable = errors.New("text generation unavailable")
	ErrEmptyRequest          = errors.New("report requires at least one issue")
)

// MapHTTPStatus maps report domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if terms.IsUnknownTerm(err) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrGenerationUnavailable) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ErrEmptyRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
