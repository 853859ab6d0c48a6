// Package vocabularies implements the abbreviation workbook domain for
// Dragoman. It provides types, data access, and business logic for
// workbook upload, registration, row extraction, and blob storage
// integration.
package vocabularies

import (
	"time"

	"github.com/google/uuid"
)

// Vocabulary statuses.
const (
	StatusUploaded   = "uploaded"
	StatusClassified = "classified"
	StatusFailed     = "failed"
)

// Vocabulary represents an uploaded abbreviation workbook with its
// metadata and blob storage reference.
type Vocabulary struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	RowCount    int       `json:"row_count"`
	StorageKey  string    `json:"storage_key"`
	Status      string    `json:"status"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new
// vocabulary workbook. Data holds the raw file bytes; RowCount is the
// number of parseable entry rows found during registration.
type CreateCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	RowCount    int
}
