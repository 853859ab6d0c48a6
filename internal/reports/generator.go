package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kmoussa/dragoman/internal/prompts"
	"github.com/kmoussa/dragoman/pkg/formatting"
)

// Generator produces the model-written sentences of a report. Both
// methods receive resolved dictionary phrases, never codes.
type Generator interface {
	// Elaborate returns one sentence describing the identified problem.
	Elaborate(ctx context.Context, component, fault string) (string, error)

	// Intervene returns one past-tense sentence stating the action was
	// carried out against "the affected component".
	Intervene(ctx context.Context, action string) (string, error)
}

type sentenceResponse struct {
	Sentence string `json:"sentence"`
}

type agentGenerator struct {
	agent   gaconfig.AgentConfig
	prompts prompts.System
}

// NewGenerator creates a Generator backed by the configured language model.
func NewGenerator(cfg gaconfig.AgentConfig, ps prompts.System) Generator {
	return &agentGenerator{agent: cfg, prompts: ps}
}

func (g *agentGenerator) Elaborate(ctx context.Context, component, fault string) (string, error) {
	payload := map[string]string{
		"component": component,
		"fault":     fault,
	}

	sentence, err := g.generate(ctx, prompts.StageElaborate, payload)
	if err != nil {
		return "", err
	}

	// Unusable model output falls back to a deterministic phrasing built
	// from the resolved dictionary phrases.
	if !usableElaboration(sentence, component, fault) {
		return ensurePeriod(fmt.Sprintf("A %s affecting the %s", fault, component)), nil
	}

	return ensurePeriod(sentence), nil
}

func (g *agentGenerator) Intervene(ctx context.Context, action string) (string, error) {
	payload := map[string]string{
		"action": action,
	}

	sentence, err := g.generate(ctx, prompts.StageIntervene, payload)
	if err != nil {
		return "", err
	}

	if !usableIntervention(sentence) {
		return fmt.Sprintf("The affected component was %s.", strings.ToLower(action)), nil
	}

	return ensurePeriod(sentence), nil
}

func (g *agentGenerator) generate(
	ctx context.Context,
	stage prompts.Stage,
	payload map[string]string,
) (string, error) {
	prompt, err := composePrompt(ctx, g.prompts, stage, payload)
	if err != nil {
		return "", err
	}

	a, err := agent.New(&g.agent)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	parsed, err := formatting.Parse[sentenceResponse](resp.Content())
	if err != nil {
		return "", fmt.Errorf("parse %s response: %w", stage, err)
	}

	return strings.TrimSpace(parsed.Sentence), nil
}

func composePrompt(
	ctx context.Context,
	ps prompts.System,
	stage prompts.Stage,
	payload map[string]string,
) (string, error) {
	instructions, err := ps.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := ps.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize %s payload: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nInput:\n\n")
	sb.Write(payloadJSON)

	return sb.String(), nil
}

// usableElaboration requires the sentence to carry both resolved phrases
// unchanged; anything else risks paraphrased terminology leaking into
// the report.
func usableElaboration(sentence, component, fault string) bool {
	if len(strings.Fields(sentence)) < 4 {
		return false
	}
	lower := strings.ToLower(sentence)
	return strings.Contains(lower, strings.ToLower(component)) &&
		strings.Contains(lower, strings.ToLower(fault))
}

func usableIntervention(sentence string) bool {
	if len(strings.Fields(sentence)) < 4 {
		return false
	}
	return strings.Contains(strings.ToLower(sentence), "affected component")
}

func ensurePeriod(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
