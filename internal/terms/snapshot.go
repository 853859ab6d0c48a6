package terms

import (
	"strings"
	"time"
)

// Snapshot is an immutable view of the full dictionary at a point in time.
// Request handling only ever reads snapshots; a reload builds a fresh
// Snapshot and swaps it in wholesale, so concurrent readers never observe
// a partially updated dictionary.
type Snapshot struct {
	terms      []Term
	byCategory map[Category]map[string]Term
	matcher    *PhraseMatcher
	loadedAt   time.Time
}

// NewSnapshot builds a Snapshot from the given terms. Codes are matched
// case-insensitively; when two terms share a normalized code within one
// category, the later entry wins (mirroring the classifier's documented
// last-write-wins merge).
func NewSnapshot(entries []Term) *Snapshot {
	byCategory := make(map[Category]map[string]Term, len(categories))
	for _, c := range categories {
		byCategory[c] = make(map[string]Term)
	}

	for _, t := range entries {
		bucket, ok := byCategory[t.Category]
		if !ok {
			continue
		}
		bucket[NormalizeCode(t.Code)] = t
	}

	return &Snapshot{
		terms:      entries,
		byCategory: byCategory,
		matcher:    NewPhraseMatcher(entries),
		loadedAt:   time.Now(),
	}
}

// NormalizeCode produces the canonical lookup key for an abbreviation code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Resolve looks up a code in the given category. The match is exact after
// case normalization; there is no fuzzy matching. A miss returns an
// UnknownTermError naming the code and category.
func (s *Snapshot) Resolve(category Category, code string) (Term, error) {
	bucket, ok := s.byCategory[category]
	if !ok {
		return Term{}, ErrInvalidCategory
	}

	t, ok := bucket[NormalizeCode(code)]
	if !ok {
		return Term{}, &UnknownTermError{Code: code, Category: category}
	}
	return t, nil
}

// Terms returns all dictionary entries in load order.
func (s *Snapshot) Terms() []Term {
	return s.terms
}

// Matcher returns the longest-match-first phrase matcher over all source phrases.
func (s *Snapshot) Matcher() *PhraseMatcher {
	return s.matcher
}

// Len returns the total number of terms across all categories.
func (s *Snapshot) Len() int {
	return len(s.terms)
}

// CategoryLen returns the number of distinct codes in one category.
func (s *Snapshot) CategoryLen(category Category) int {
	return len(s.byCategory[category])
}

// LoadedAt returns the time the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}
