package terms_test

import (
	"testing"

	"github.com/kmoussa/dragoman/internal/terms"
)

func matcherFixture() *terms.PhraseMatcher {
	return terms.NewPhraseMatcher([]terms.Term{
		entry("DISP", terms.CategoryComponent, "cash dispenser", "distributeur de billets"),
		entry("CDU", terms.CategoryComponent, "cash dispenser unit", "module distributeur"),
		entry("PIN", terms.CategoryComponent, "pin pad", "clavier de saisie"),
		entry("JAM", terms.CategoryTicketType, "card jam", "carte coincée"),
	})
}

func TestMatcherFindsPhrases(t *testing.T) {
	m := matcherFixture()

	matches := m.Find("the cash dispenser reported a card jam")
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}

	if matches[0].Term.Code != "DISP" {
		t.Errorf("matches[0].Code = %q, want DISP", matches[0].Term.Code)
	}
	if matches[1].Term.Code != "JAM" {
		t.Errorf("matches[1].Code = %q, want JAM", matches[1].Term.Code)
	}
	if matches[0].Start >= matches[1].Start {
		t.Error("matches not ordered by start position")
	}
}

func TestMatcherPrefersLongestPhrase(t *testing.T) {
	m := matcherFixture()

	matches := m.Find("replaced the cash dispenser unit cover")
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Term.Code != "CDU" {
		t.Errorf("Code = %q, want CDU over the shorter DISP prefix", matches[0].Term.Code)
	}

	text := "replaced the cash dispenser unit cover"
	if got := text[matches[0].Start:matches[0].End]; got != "cash dispenser unit" {
		t.Errorf("matched text = %q, want full phrase", got)
	}
}

func TestMatcherCaseInsensitive(t *testing.T) {
	m := matcherFixture()

	matches := m.Find("CASH DISPENSER offline, Pin Pad unresponsive")
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].Term.Code != "DISP" || matches[1].Term.Code != "PIN" {
		t.Errorf("codes = %q, %q, want DISP, PIN", matches[0].Term.Code, matches[1].Term.Code)
	}
}

func TestMatcherWordBoundaries(t *testing.T) {
	m := terms.NewPhraseMatcher([]terms.Term{
		entry("JAM", terms.CategoryTicketType, "jam", "bourrage"),
	})

	tests := []struct {
		name string
		text string
		want int
	}{
		{"standalone word", "paper jam detected", 1},
		{"inside longer word", "jammed rollers", 0},
		{"prefix of longer word", "pajamas", 0},
		{"adjacent punctuation", "jam, then recovery", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(m.Find(tt.text)); got != tt.want {
				t.Errorf("Find(%q) matched %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatcherRepeatedOccurrences(t *testing.T) {
	m := matcherFixture()

	matches := m.Find("pin pad error cleared, pin pad verified")
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want one match per occurrence", len(matches))
	}
	if matches[0].Start == matches[1].Start {
		t.Error("repeated occurrences share a start position")
	}
}

func TestMatcherDuplicatePhraseFirstWins(t *testing.T) {
	m := terms.NewPhraseMatcher([]terms.Term{
		entry("A1", terms.CategoryAction, "reset the controller", "first"),
		entry("A2", terms.CategoryAction, "Reset The Controller", "second"),
	})

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}

	matches := m.Find("reset the controller twice")
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Term.Code != "A1" {
		t.Errorf("Code = %q, want first entry to win", matches[0].Term.Code)
	}
}

func TestMatcherEmpty(t *testing.T) {
	m := terms.NewPhraseMatcher(nil)

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if matches := m.Find("cash dispenser"); matches != nil {
		t.Errorf("Find = %v, want nil", matches)
	}
}

func TestMatcherSkipsBlankPhrases(t *testing.T) {
	m := terms.NewPhraseMatcher([]terms.Term{
		entry("B1", terms.CategoryAction, "   ", "blank"),
		entry("B2", terms.CategoryAction, "cleaned the sensor", "nettoyage"),
	})

	if m.Len() != 1 {
		t.Errorf("Len() = %d, want blank phrase skipped", m.Len())
	}
}
