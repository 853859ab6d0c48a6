package terms

import (
	"regexp"
	"sort"
	"strings"
)

// PhraseMatch is one recognized source-phrase occurrence in a text.
type PhraseMatch struct {
	Start int
	End   int
	Term  Term
}

// PhraseMatcher scans text for occurrences of dictionary source phrases.
// Matching is case-insensitive and word-bounded, so a phrase never matches
// inside an unrelated longer word. Alternatives are ordered longest first:
// at the same start position the longest known phrase wins, so "cash
// dispenser unit" is matched as one phrase rather than shadowed by "cash
// dispenser". Distinct occurrences are reported separately.
type PhraseMatcher struct {
	pattern  *regexp.Regexp
	byPhrase map[string]Term
}

// NewPhraseMatcher builds a matcher over the source phrases of all entries.
// When two entries carry the same source phrase, the earliest entry wins.
func NewPhraseMatcher(entries []Term) *PhraseMatcher {
	byPhrase := make(map[string]Term)
	phrases := make([]string, 0, len(entries))

	for _, t := range entries {
		phrase := strings.ToLower(strings.TrimSpace(t.SourcePhrase))
		if phrase == "" {
			continue
		}
		if _, ok := byPhrase[phrase]; ok {
			continue
		}
		byPhrase[phrase] = t
		phrases = append(phrases, phrase)
	}

	if len(phrases) == 0 {
		return &PhraseMatcher{byPhrase: byPhrase}
	}

	// Longest first so the regex engine prefers the longer alternative at
	// equal start positions; lexicographic within a length for determinism.
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})

	alternatives := make([]string, len(phrases))
	for i, p := range phrases {
		alternatives[i] = boundedLiteral(p)
	}

	pattern := regexp.MustCompile(`(?i)(?:` + strings.Join(alternatives, "|") + `)`)

	return &PhraseMatcher{
		pattern:  pattern,
		byPhrase: byPhrase,
	}
}

// Find returns all non-overlapping phrase matches in text, earliest start
// first. Overlaps resolve by earliest start, then longest phrase.
func (m *PhraseMatcher) Find(text string) []PhraseMatch {
	if m.pattern == nil {
		return nil
	}

	indices := m.pattern.FindAllStringIndex(text, -1)
	if len(indices) == 0 {
		return nil
	}

	matches := make([]PhraseMatch, 0, len(indices))
	for _, idx := range indices {
		phrase := strings.ToLower(text[idx[0]:idx[1]])
		t, ok := m.byPhrase[phrase]
		if !ok {
			continue
		}
		matches = append(matches, PhraseMatch{
			Start: idx[0],
			End:   idx[1],
			Term:  t,
		})
	}

	return matches
}

// Len returns the number of distinct phrases in the matcher.
func (m *PhraseMatcher) Len() int {
	return len(m.byPhrase)
}

// boundedLiteral quotes a phrase for the alternation, attaching \b
// assertions only where the phrase edge is a word character. Phrases that
// begin or end with punctuation (e.g. a parenthesized unit name) get no
// boundary on that side, since \b would never hold there.
func boundedLiteral(phrase string) string {
	quoted := regexp.QuoteMeta(phrase)
	if isWordByte(phrase[0]) {
		quoted = `\b` + quoted
	}
	if isWordByte(phrase[len(phrase)-1]) {
		quoted += `\b`
	}
	return quoted
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
