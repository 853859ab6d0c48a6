package classifier

import (
	"errors"
	"net/http"

	"github.com/kmoussa/dragoman/internal/terms"
	"github.com/kmoussa/dragoman/internal/vocabularies"
)

// Domain errors for classification run operations.
var (
	ErrNotFound          = errors.New("classification run not found")
	ErrDuplicate         = errors.New("classification run already exists")
	ErrOracleUnavailable = errors.New("categorization oracle unavailable")
)

// MapHTTPStatus maps classifier domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrOracleUnavailable) ||
		errors.Is(err, terms.ErrReloadFailed) {
		return http.StatusBadGateway
	}

	// surface problems with the underlying vocabulary directly
	if errors.Is(err, vocabularies.ErrNotFound) ||
		errors.Is(err, vocabularies.ErrInvalidFile) ||
		errors.Is(err, vocabularies.ErrUnsupportedFormat) {
		return vocabularies.MapHTTPStatus(err)
	}

	return http.StatusInternalServerError
}
