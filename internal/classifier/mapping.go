package classifier

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/kmoussa/dragoman/pkg/query"
	"github.com/kmoussa/dragoman/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "classification_runs", "r").
	Project("id", "ID").
	Project("vocabulary_id", "VocabularyID").
	Project("total_rows", "TotalRows").
	Project("classified", "Classified").
	Project("rejected", "Rejected").
	Project("rejections", "Rejections").
	Project("model_name", "ModelName").
	Project("provider_name", "ProviderName").
	Project("started_at", "StartedAt").
	Project("completed_at", "CompletedAt")

var defaultSort = query.SortField{
	Field:      "CompletedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for run queries.
// Nil fields are ignored; all fields use exact matching.
type Filters struct {
	VocabularyID *uuid.UUID `json:"vocabulary_id,omitempty"`
	ModelName    *string    `json:"model_name,omitempty"`
	ProviderName *string    `json:"provider_name,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("VocabularyID", f.VocabularyID).
		WhereEquals("ModelName", f.ModelName).
		WhereEquals("ProviderName", f.ProviderName)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("vocabulary_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.VocabularyID = &id
		}
	}

	if m := values.Get("model_name"); m != "" {
		f.ModelName = &m
	}

	if p := values.Get("provider_name"); p != "" {
		f.ProviderName = &p
	}

	return f
}

func scanRun(s repository.Scanner) (Run, error) {
	var r Run
	var rejectionsRaw []byte

	err := s.Scan(
		&r.ID,
		&r.VocabularyID,
		&r.TotalRows,
		&r.Classified,
		&r.Rejected,
		&rejectionsRaw,
		&r.ModelName,
		&r.ProviderName,
		&r.StartedAt,
		&r.CompletedAt,
	)

	if err != nil {
		return r, err
	}

	if len(rejectionsRaw) > 0 {
		if err := json.Unmarshal(rejectionsRaw, &r.Rejections); err != nil {
			return r, fmt.Errorf("unmarshal rejections: %w", err)
		}
	}

	if r.Rejections == nil {
		r.Rejections = []Rejection{}
	}

	return r, nil
}
