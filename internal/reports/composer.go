package reports

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kmoussa/dragoman/internal/prompts"
	"github.com/kmoussa/dragoman/internal/terms"
)

type composer struct {
	gen    Generator
	terms  terms.System
	logger *slog.Logger
}

// New creates a report composer implementing the System interface.
func New(
	agent gaconfig.AgentConfig,
	ps prompts.System,
	ts terms.System,
	logger *slog.Logger,
) System {
	return &composer{
		gen:    NewGenerator(agent, ps),
		terms:  ts,
		logger: logger.With("system", "reports"),
	}
}

func (c *composer) Handler() *Handler {
	return NewHandler(c, c.logger)
}

type resolvedIssue struct {
	component string
	fault     string
}

// Compose builds a customer-facing report from incident codes. Every code
// is resolved against the dictionary snapshot before any generation call;
// a single unknown code fails the whole request with no partial output.
func (c *composer) Compose(ctx context.Context, req IncidentDescription) (*Report, error) {
	if len(req.Issues) == 0 {
		return nil, ErrEmptyRequest
	}

	snap := c.terms.Snapshot()

	issues := make([]resolvedIssue, len(req.Issues))
	for i, issue := range req.Issues {
		component, err := snap.Resolve(terms.CategoryComponent, issue.Component)
		if err != nil {
			return nil, err
		}

		fault, err := snap.Resolve(terms.CategoryTicketType, issue.Fault)
		if err != nil {
			return nil, err
		}

		issues[i] = resolvedIssue{
			component: component.SourcePhrase,
			fault:     fault.SourcePhrase,
		}
	}

	actions := make([]string, len(req.Actions))
	for i, code := range req.Actions {
		action, err := snap.Resolve(terms.CategoryAction, code)
		if err != nil {
			return nil, err
		}
		actions[i] = action.SourcePhrase
	}

	sentences, interventions, err := c.generate(ctx, issues, actions)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Text:        assemble(sentences, interventions),
		Issues:      len(sentences),
		Actions:     len(interventions),
		GeneratedAt: time.Now().UTC(),
	}

	c.logger.Info("report composed", "issues", report.Issues, "actions", report.Actions)
	return report, nil
}

// generate runs elaborate and intervene calls concurrently. Results land
// at the index of their input so assembly order stays the request order.
func (c *composer) generate(
	ctx context.Context,
	issues []resolvedIssue,
	actions []string,
) ([]string, []string, error) {
	sentences := make([]string, len(issues))
	interventions := make([]string, len(actions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(min(runtime.NumCPU(), len(issues)+len(actions)), 1))

	for i := range issues {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			s, err := c.gen.Elaborate(gctx, issues[i].component, issues[i].fault)
			if err != nil {
				return fmt.Errorf("issue %d: %w", i+1, err)
			}

			sentences[i] = s
			return nil
		})
	}

	for i := range actions {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			s, err := c.gen.Intervene(gctx, actions[i])
			if err != nil {
				return fmt.Errorf("action %d: %w", i+1, err)
			}

			interventions[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return sentences, interventions, nil
}

// assemble lays the generated sentences into the report template. With
// actions present the report confirms the completed intervention; without
// them it acknowledges the request. Single entries are inlined, multiple
// entries become a numbered list.
func assemble(sentences, interventions []string) string {
	var sb strings.Builder
	sb.WriteString("Dear Customer,\n")

	if len(interventions) > 0 {
		sb.WriteString("Following the completion of the required intervention, we confirm that the ATM has been returned to service and is now operational.\n")

		if len(sentences) == 1 {
			sb.WriteString("Our technical team identified the following problem: ")
			sb.WriteString(sentences[0])
			sb.WriteString("\n")
		} else {
			sb.WriteString("Our technical team identified the following problems:\n")
			sb.WriteString(numbered(sentences))
			sb.WriteString("\n")
		}

		if len(interventions) == 1 {
			sb.WriteString("Please find below our intervention report: ")
			sb.WriteString(interventions[0])
		} else {
			sb.WriteString("Please find below our intervention report:\n")
			sb.WriteString(numbered(interventions))
		}

		return sb.String()
	}

	if len(sentences) == 1 {
		sb.WriteString("We have received your request regarding the following problem:\n")
		sb.WriteString(sentences[0])
		sb.WriteString("\n")
		sb.WriteString("Our technical team will review the request and take the necessary actions to resolve it.")
	} else {
		sb.WriteString("We have received your request regarding the following problems:\n")
		sb.WriteString(numbered(sentences))
		sb.WriteString("\n")
		sb.WriteString("Our technical team will review the request and take the necessary actions to resolve them.")
	}

	return sb.String()
}

func numbered(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}
