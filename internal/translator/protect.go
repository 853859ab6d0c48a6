package translator

import (
	"fmt"
	"strings"

	"github.com/kmoussa/dragoman/internal/terms"
)

// tokenBinding associates a placeholder token with the dictionary phrases
// it protects. Each occurrence in the source text gets its own token, so
// restoration never has to disambiguate repeated phrases.
type tokenBinding struct {
	Token        string
	SourcePhrase string
	TargetPhrase string
}

func tokenFor(n int) string {
	return fmt.Sprintf("⟦T%d⟧", n)
}

// protect replaces every dictionary phrase occurrence in text with a
// fresh placeholder token. Matching is longest-first, earliest-start,
// case-insensitive, and word-bounded via the snapshot's phrase matcher.
// The returned bindings are in occurrence order.
func protect(snap *terms.Snapshot, text string) (string, []tokenBinding) {
	matches := snap.Matcher().Find(text)
	if len(matches) == 0 {
		return text, nil
	}

	var sb strings.Builder
	sb.Grow(len(text))

	bindings := make([]tokenBinding, 0, len(matches))
	cursor := 0

	for i, m := range matches {
		token := tokenFor(i)
		sb.WriteString(text[cursor:m.Start])
		sb.WriteString(token)
		cursor = m.End

		bindings = append(bindings, tokenBinding{
			Token:        token,
			SourcePhrase: text[m.Start:m.End],
			TargetPhrase: m.Term.TargetPhrase,
		})
	}

	sb.WriteString(text[cursor:])
	return sb.String(), bindings
}
