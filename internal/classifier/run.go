// Package classifier implements the term classification domain for
// Dragoman. It drives the categorization oracle over uploaded vocabulary
// entries, merges verdicts into the term dictionary, and records each
// classification run.
package classifier

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a stored classification run for a vocabulary.
// It mirrors the classification_runs table schema.
type Run struct {
	ID           uuid.UUID   `json:"id"`
	VocabularyID uuid.UUID   `json:"vocabulary_id"`
	TotalRows    int         `json:"total_rows"`
	Classified   int         `json:"classified"`
	Rejected     int         `json:"rejected"`
	Rejections   []Rejection `json:"rejections"`
	ModelName    string      `json:"model_name"`
	ProviderName string      `json:"provider_name"`
	StartedAt    time.Time   `json:"started_at"`
	CompletedAt  time.Time   `json:"completed_at"`
}

// Rejection records a vocabulary entry that did not make it into the
// dictionary, either because the workbook row was unusable or because
// the oracle judged it unclassifiable.
type Rejection struct {
	Row          int    `json:"row"`
	Code         string `json:"code,omitempty"`
	SourcePhrase string `json:"source_phrase,omitempty"`
	Reason       string `json:"reason"`
}
