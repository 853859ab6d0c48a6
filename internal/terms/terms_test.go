package terms_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/kmoussa/dragoman/internal/terms"
)

func entry(code string, category terms.Category, source, target string) terms.Term {
	return terms.Term{
		Code:         code,
		Category:     category,
		SourcePhrase: source,
		TargetPhrase: target,
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", terms.ErrNotFound, http.StatusNotFound},
		{"duplicate", terms.ErrDuplicate, http.StatusConflict},
		{"invalid category", terms.ErrInvalidCategory, http.StatusBadRequest},
		{"reload failed", terms.ErrReloadFailed, http.StatusBadGateway},
		{"unknown term", &terms.UnknownTermError{Code: "DISP", Category: terms.CategoryComponent}, http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", terms.ErrNotFound), http.StatusNotFound},
		{"wrapped reload", fmt.Errorf("startup: %w", terms.ErrReloadFailed), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := terms.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestUnknownTermError(t *testing.T) {
	err := &terms.UnknownTermError{Code: "CDU", Category: terms.CategoryComponent}

	if !terms.IsUnknownTerm(err) {
		t.Error("IsUnknownTerm(UnknownTermError) = false, want true")
	}
	if !terms.IsUnknownTerm(fmt.Errorf("resolve: %w", err)) {
		t.Error("IsUnknownTerm(wrapped) = false, want true")
	}
	if terms.IsUnknownTerm(errors.New("other")) {
		t.Error("IsUnknownTerm(other) = true, want false")
	}

	msg := err.Error()
	if msg != `unknown component term: "CDU"` {
		t.Errorf("Error() = %q, want code and category named", msg)
	}
}

func TestCategoryUnmarshalJSON(t *testing.T) {
	t.Run("valid categories", func(t *testing.T) {
		for _, c := range terms.Categories() {
			t.Run(string(c), func(t *testing.T) {
				var got terms.Category
				if err := json.Unmarshal([]byte(fmt.Sprintf("%q", c)), &got); err != nil {
					t.Fatalf("Unmarshal(%q) error: %v", c, err)
				}
				if got != c {
					t.Errorf("Unmarshal(%q) = %q", c, got)
				}
			})
		}
	})

	t.Run("invalid category returns error", func(t *testing.T) {
		var c terms.Category
		err := json.Unmarshal([]byte(`"banana"`), &c)
		if !errors.Is(err, terms.ErrInvalidCategory) {
			t.Errorf("Unmarshal(banana) error = %v, want ErrInvalidCategory", err)
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		var c terms.Category
		err := json.Unmarshal([]byte(`""`), &c)
		if !errors.Is(err, terms.ErrInvalidCategory) {
			t.Errorf("Unmarshal('') error = %v, want ErrInvalidCategory", err)
		}
	})
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    terms.Category
		wantErr bool
	}{
		{"action", terms.CategoryAction, false},
		{"ticket_type", terms.CategoryTicketType, false},
		{"component", terms.CategoryComponent, false},
		{"Component", "", true},
		{"banana", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := terms.ParseCategory(tt.input)
			if tt.wantErr {
				if !errors.Is(err, terms.ErrInvalidCategory) {
					t.Errorf("ParseCategory(%q) error = %v, want ErrInvalidCategory", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"disp", "DISP"},
		{"  Disp  ", "DISP"},
		{"CDU", "CDU"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := terms.NormalizeCode(tt.input); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSnapshotResolve(t *testing.T) {
	snap := terms.NewSnapshot([]terms.Term{
		entry("DISP", terms.CategoryComponent, "cash dispenser", "distributeur de billets"),
		entry("JAM", terms.CategoryTicketType, "card jam", "carte coincée"),
		entry("REPL", terms.CategoryAction, "replaced the module", "remplacement du module"),
	})

	t.Run("resolves exact code", func(t *testing.T) {
		got, err := snap.Resolve(terms.CategoryComponent, "DISP")
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if got.SourcePhrase != "cash dispenser" {
			t.Errorf("SourcePhrase = %q, want cash dispenser", got.SourcePhrase)
		}
	})

	t.Run("code lookup is case-insensitive", func(t *testing.T) {
		got, err := snap.Resolve(terms.CategoryTicketType, "  jam ")
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if got.TargetPhrase != "carte coincée" {
			t.Errorf("TargetPhrase = %q", got.TargetPhrase)
		}
	})

	t.Run("miss names the code", func(t *testing.T) {
		_, err := snap.Resolve(terms.CategoryComponent, "NOPE")
		if !terms.IsUnknownTerm(err) {
			t.Fatalf("Resolve error = %v, want UnknownTermError", err)
		}

		var ute *terms.UnknownTermError
		errors.As(err, &ute)
		if ute.Code != "NOPE" || ute.Category != terms.CategoryComponent {
			t.Errorf("UnknownTermError = %+v, want code NOPE in component", ute)
		}
	})

	t.Run("categories are isolated", func(t *testing.T) {
		_, err := snap.Resolve(terms.CategoryAction, "DISP")
		if !terms.IsUnknownTerm(err) {
			t.Errorf("Resolve(action, DISP) error = %v, want UnknownTermError", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		_, err := snap.Resolve("banana", "DISP")
		if !errors.Is(err, terms.ErrInvalidCategory) {
			t.Errorf("Resolve(banana) error = %v, want ErrInvalidCategory", err)
		}
	})
}

func TestSnapshotDuplicateCodes(t *testing.T) {
	snap := terms.NewSnapshot([]terms.Term{
		entry("DISP", terms.CategoryComponent, "cash dispenser", "old target"),
		entry("disp", terms.CategoryComponent, "cash dispenser unit", "new target"),
	})

	got, err := snap.Resolve(terms.CategoryComponent, "DISP")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.TargetPhrase != "new target" {
		t.Errorf("TargetPhrase = %q, want last entry to win", got.TargetPhrase)
	}
	if snap.CategoryLen(terms.CategoryComponent) != 1 {
		t.Errorf("CategoryLen = %d, want 1", snap.CategoryLen(terms.CategoryComponent))
	}
}

func TestSnapshotCounts(t *testing.T) {
	snap := terms.NewSnapshot([]terms.Term{
		entry("DISP", terms.CategoryComponent, "cash dispenser", "distributeur"),
		entry("PIN", terms.CategoryComponent, "pin pad", "clavier"),
		entry("RST", terms.CategoryAction, "restarted the terminal", "redémarrage du terminal"),
	})

	if snap.Len() != 3 {
		t.Errorf("Len() = %d, want 3", snap.Len())
	}
	if snap.CategoryLen(terms.CategoryComponent) != 2 {
		t.Errorf("CategoryLen(component) = %d, want 2", snap.CategoryLen(terms.CategoryComponent))
	}
	if snap.CategoryLen(terms.CategoryTicketType) != 0 {
		t.Errorf("CategoryLen(ticket_type) = %d, want 0", snap.CategoryLen(terms.CategoryTicketType))
	}
	if snap.LoadedAt().IsZero() {
		t.Error("LoadedAt() is zero")
	}
}

func TestEmptySnapshot(t *testing.T) {
	snap := terms.NewSnapshot(nil)

	if snap.Len() != 0 {
		t.Errorf("Len() = %d, want 0", snap.Len())
	}
	_, err := snap.Resolve(terms.CategoryComponent, "DISP")
	if !terms.IsUnknownTerm(err) {
		t.Errorf("Resolve on empty snapshot error = %v, want UnknownTermError", err)
	}
	if matches := snap.Matcher().Find("cash dispenser jammed"); matches != nil {
		t.Errorf("Find on empty matcher = %v, want nil", matches)
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("all params present", func(t *testing.T) {
		values := url.Values{
			"category":      {"component"},
			"code":          {"DISP"},
			"source_phrase": {"dispenser"},
			"target_phrase": {"distributeur"},
		}

		f := terms.FiltersFromQuery(values)

		if f.Category == nil || *f.Category != "component" {
			t.Errorf("Category = %v, want component", f.Category)
		}
		if f.Code == nil || *f.Code != "DISP" {
			t.Errorf("Code = %v, want DISP", f.Code)
		}
		if f.SourcePhrase == nil || *f.SourcePhrase != "dispenser" {
			t.Errorf("SourcePhrase = %v, want dispenser", f.SourcePhrase)
		}
		if f.TargetPhrase == nil || *f.TargetPhrase != "distributeur" {
			t.Errorf("TargetPhrase = %v, want distributeur", f.TargetPhrase)
		}
	})

	t.Run("empty params yield nil fields", func(t *testing.T) {
		f := terms.FiltersFromQuery(url.Values{})

		if f.Category != nil || f.Code != nil || f.SourcePhrase != nil || f.TargetPhrase != nil {
			t.Errorf("Filters = %+v, want all nil", f)
		}
	})

	t.Run("partial params", func(t *testing.T) {
		f := terms.FiltersFromQuery(url.Values{"code": {"DISP"}})

		if f.Code == nil || *f.Code != "DISP" {
			t.Errorf("Code = %v, want DISP", f.Code)
		}
		if f.Category != nil {
			t.Errorf("Category = %v, want nil", f.Category)
		}
	})
}
