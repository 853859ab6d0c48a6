// Package terms implements the bilingual term dictionary for Dragoman.
// It provides the durable term store, the immutable in-memory snapshot
// consumed by report composition and translation, and the HTTP surface
// for inspecting and reloading the dictionary.
package terms

import (
	"time"

	"github.com/google/uuid"
)

// Term is a dictionary entry mapping an abbreviation code to its approved
// phrasing in the source and target languages.
type Term struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Category     Category  `json:"category"`
	SourcePhrase string    `json:"source_phrase"`
	TargetPhrase string    `json:"target_phrase"`
	ClassifiedAt time.Time `json:"classified_at"`
}
