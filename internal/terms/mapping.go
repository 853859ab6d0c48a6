package terms

import (
	"net/url"

	"github.com/kmoussa/dragoman/pkg/query"
	"github.com/kmoussa/dragoman/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "terms", "t").
	Project("id", "ID").
	Project("code", "Code").
	Project("category", "Category").
	Project("source_phrase", "SourcePhrase").
	Project("target_phrase", "TargetPhrase").
	Project("classified_at", "ClassifiedAt")

var defaultSort = query.SortField{
	Field:      "Code",
	Descending: false,
}

// Filters contains optional filtering criteria for term queries.
// Nil fields are ignored. Category and Code use exact matching.
// SourcePhrase and TargetPhrase use case-insensitive contains matching.
type Filters struct {
	Category     *string `json:"category,omitempty"`
	Code         *string `json:"code,omitempty"`
	SourcePhrase *string `json:"source_phrase,omitempty"`
	TargetPhrase *string `json:"target_phrase,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Category", f.Category).
		WhereEquals("Code", f.Code).
		WhereContains("SourcePhrase", f.SourcePhrase).
		WhereContains("TargetPhrase", f.TargetPhrase)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}

	if c := values.Get("code"); c != "" {
		f.Code = &c
	}

	if sp := values.Get("source_phrase"); sp != "" {
		f.SourcePhrase = &sp
	}

	if tp := values.Get("target_phrase"); tp != "" {
		f.TargetPhrase = &tp
	}

	return f
}

func scanTerm(s repository.Scanner) (Term, error) {
	var t Term
	err := s.Scan(
		&t.ID,
		&t.Code,
		&t.Category,
		&t.SourcePhrase,
		&t.TargetPhrase,
		&t.ClassifiedAt,
	)
	return t, err
}
