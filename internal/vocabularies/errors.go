package vocabularies

import (
	"errors"
	"net/http"
)

// Domain errors for vocabulary operations.
var (
	ErrNotFound          = errors.New("vocabulary not found")
	ErrDuplicate         = errors.New("vocabulary already exists")
	ErrFileTooLarge      = errors.New("file exceeds maximum upload size")
	ErrInvalidFile       = errors.New("invalid file")
	ErrUnsupportedFormat = errors.New("unsupported workbook format")
	ErrNoEntries         = errors.New("workbook contains no parseable entries")
)

// MapHTTPStatus maps vocabulary domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidFile) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrNoEntries) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
