// Package translator implements the terminology-preserving translation
// domain for Dragoman. Reports pass through three strict phases: protect
// (dictionary phrases become placeholder tokens), translate (the
// placeholder-bearing text goes through the translation model line by
// line), and restore (tokens become target-language phrases, with
// reconciliation for tokens the model mangled).
package translator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kmoussa/dragoman/internal/prompts"
	"github.com/kmoussa/dragoman/internal/terms"
)

// Options tunes the translation pipeline.
type Options struct {
	// RequestTimeout bounds each model call.
	RequestTimeout time.Duration

	// Tolerance is the maximum fraction of protected tokens that may end
	// up unresolved before the translation fails integrity.
	Tolerance float64

	// BreakerMaxFailures is the consecutive failure count that opens the
	// circuit breaker.
	BreakerMaxFailures uint32

	// BreakerOpenTimeout is how long the breaker stays open before
	// probing again.
	BreakerOpenTimeout time.Duration
}

// Result is the outcome of a terminology-preserving translation.
// Degraded is true when any token needed reconciliation; the text is
// still usable but should be reviewed.
type Result struct {
	Text       string   `json:"text"`
	Degraded   bool     `json:"degraded"`
	Protected  int      `json:"protected"`
	Reconciled []string `json:"reconciled,omitempty"`
	Unresolved []string `json:"unresolved,omitempty"`
}

type service struct {
	model     Model
	terms     terms.System
	tolerance float64
	logger    *slog.Logger
}

// New creates a translator implementing the System interface.
func New(
	agent gaconfig.AgentConfig,
	ps prompts.System,
	ts terms.System,
	opts Options,
	logger *slog.Logger,
) System {
	return &service{
		model:     NewModel(agent, ps, opts),
		terms:     ts,
		tolerance: opts.Tolerance,
		logger:    logger.With("system", "translator"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

var numberedPrefix = regexp.MustCompile(`^(\d+\.\s+)(.*)$`)

// Translate runs the full protect, translate, restore pipeline over a
// report. Line structure survives translation: numbered prefixes pass
// through verbatim and blank lines stay blank.
func (s *service) Translate(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	snap := s.terms.Snapshot()
	protected, bindings := protect(snap, text)

	translated, err := s.translateLines(ctx, protected)
	if err != nil {
		return nil, err
	}

	outcome := restore(translated, bindings)

	if exceedsTolerance(len(outcome.unresolved), len(bindings), s.tolerance) {
		return nil, fmt.Errorf("%w: %d of %d protected terms unresolved",
			ErrIntegrity, len(outcome.unresolved), len(bindings))
	}

	result := &Result{
		Text:       outcome.text,
		Degraded:   len(outcome.reconciled) > 0,
		Protected:  len(bindings),
		Reconciled: outcome.reconciled,
		Unresolved: outcome.unresolved,
	}

	s.logger.Info("translation complete",
		"protected", result.Protected,
		"reconciled", len(result.Reconciled),
		"unresolved", len(result.Unresolved),
		"degraded", result.Degraded,
	)
	return result, nil
}

func (s *service) translateLines(ctx context.Context, text string) (string, error) {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
			continue
		}

		prefix := ""
		body := line
		if m := numberedPrefix.FindStringSubmatch(line); m != nil {
			prefix = m[1]
			body = m[2]
		}

		translated, err := s.model.Translate(ctx, body)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}

		out[i] = prefix + translated
	}

	return strings.Join(out, "\n"), nil
}

func exceedsTolerance(unresolved, protected int, tolerance float64) bool {
	if protected == 0 || unresolved == 0 {
		return false
	}
	return float64(unresolved)/float64(protected) > tolerance
}
