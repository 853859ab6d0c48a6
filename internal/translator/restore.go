package translator

import (
	"fmt"
	"regexp"
	"strings"
)

// debrisPattern matches any placeholder-shaped fragment left in the text,
// including case drift and whitespace the model may have inserted inside
// the token.
var debrisPattern = regexp.MustCompile(`(?i)\x{27e6}\s*T\s*\d+\s*\x{27e7}`)

// restoreOutcome reports how each protected token was resolved.
type restoreOutcome struct {
	text       string
	reconciled []string
	unresolved []string
}

// restore substitutes target phrases back into the translated text. Each
// token is tried three ways: exact match, tolerant match (case drift or
// whitespace inside the token), and finally reconciliation by locating
// the original source phrase in the translated text. Tokens that survive
// all three are reported unresolved. Leftover token debris is stripped
// only after every binding has been accounted for.
func restore(translated string, bindings []tokenBinding) restoreOutcome {
	out := restoreOutcome{text: translated}

	for i, b := range bindings {
		if strings.Contains(out.text, b.Token) {
			out.text = strings.Replace(out.text, b.Token, b.TargetPhrase, 1)
			continue
		}

		if pattern := tolerantTokenPattern(i); pattern.MatchString(out.text) {
			out.text = pattern.ReplaceAllLiteralString(out.text, b.TargetPhrase)
			continue
		}

		if replaced, ok := reconcile(out.text, b); ok {
			out.text = replaced
			out.reconciled = append(out.reconciled, fmt.Sprintf("%s -> %s", b.Token, b.TargetPhrase))
			continue
		}

		out.unresolved = append(out.unresolved, fmt.Sprintf("%s (%s)", b.Token, b.SourcePhrase))
	}

	out.text = strings.TrimSpace(debrisPattern.ReplaceAllString(out.text, ""))
	return out
}

// tolerantTokenPattern matches token n with case drift and inserted
// whitespace, e.g. "⟦ t3 ⟧".
func tolerantTokenPattern(n int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)\x{27e6}\s*T\s*%d\s*\x{27e7}`, n))
}

// reconcile looks for the untranslated source phrase in the translated
// text and substitutes the target phrase at its first word-bounded,
// case-insensitive occurrence.
func reconcile(text string, b tokenBinding) (string, bool) {
	pattern, err := regexp.Compile(`(?i)` + boundedQuote(b.SourcePhrase))
	if err != nil {
		return text, false
	}

	loc := pattern.FindStringIndex(text)
	if loc == nil {
		return text, false
	}

	return text[:loc[0]] + b.TargetPhrase + text[loc[1]:], true
}

func boundedQuote(phrase string) string {
	quoted := regexp.QuoteMeta(phrase)
	if isWordByte(phrase[0]) {
		quoted = `\b` + quoted
	}
	if isWordByte(phrase[len(phrase)-1]) {
		quoted += `\b`
	}
	return quoted
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
