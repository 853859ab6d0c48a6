package terms

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors for term operations.
var (
	ErrNotFound        = errors.New("term not found")
	ErrDuplicate       = errors.New("term already exists for category and code")
	ErrInvalidCategory = errors.New("category must be action, ticket_type, or component")
	ErrReloadFailed    = errors.New("dictionary reload failed; prior snapshot remains authoritative")
)

// UnknownTermError reports a code that has no dictionary entry in the
// expected category. It always names the offending code so callers can act
// on it; no component substitutes a guess for an unresolved term.
type UnknownTermError struct {
	Code     string
	Category Category
}

func (e *UnknownTermError) Error() string {
	return fmt.Sprintf("unknown %s term: %q", e.Category, e.Code)
}

// IsUnknownTerm reports whether err wraps an UnknownTermError.
func IsUnknownTerm(err error) bool {
	var ute *UnknownTermError
	return errors.As(err, &ute)
}

// MapHTTPStatus maps term domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if IsUnknownTerm(err) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidCategory) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrReloadFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
