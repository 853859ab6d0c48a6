package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kmoussa/dragoman/internal/prompts"
	"github.com/kmoussa/dragoman/internal/vocabularies"
	"github.com/kmoussa/dragoman/pkg/formatting"
)

// Verdict is the oracle's judgment for a single vocabulary entry.
// Category is one of the dictionary categories or "unclassifiable".
type Verdict struct {
	Category  string `json:"category"`
	Rationale string `json:"rationale"`
}

// CategoryUnclassifiable marks entries the oracle declined to place in
// any dictionary category.
const CategoryUnclassifiable = "unclassifiable"

// Oracle assigns a dictionary category to a vocabulary entry.
type Oracle interface {
	Classify(ctx context.Context, entry vocabularies.RawEntry) (*Verdict, error)
}

type agentOracle struct {
	agent   gaconfig.AgentConfig
	prompts prompts.System
}

// NewOracle creates an Oracle backed by the configured language model.
func NewOracle(cfg gaconfig.AgentConfig, ps prompts.System) Oracle {
	return &agentOracle{agent: cfg, prompts: ps}
}

func (o *agentOracle) Classify(ctx context.Context, entry vocabularies.RawEntry) (*Verdict, error) {
	prompt, err := composeClassifyPrompt(ctx, o.prompts, entry)
	if err != nil {
		return nil, err
	}

	a, err := agent.New(&o.agent)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}

	verdict, err := formatting.Parse[Verdict](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("parse oracle response: %w", err)
	}

	verdict.Category = strings.ToLower(strings.TrimSpace(verdict.Category))
	return &verdict, nil
}

func composeClassifyPrompt(
	ctx context.Context,
	ps prompts.System,
	entry vocabularies.RawEntry,
) (string, error) {
	instructions, err := ps.Instructions(ctx, prompts.StageClassify)
	if err != nil {
		return "", fmt.Errorf("load classify instructions: %w", err)
	}

	spec, err := ps.Spec(ctx, prompts.StageClassify)
	if err != nil {
		return "", fmt.Errorf("load classify spec: %w", err)
	}

	entryJSON, err := json.MarshalIndent(map[string]string{
		"code":          entry.Code,
		"source_phrase": entry.SourceText,
		"target_phrase": entry.TargetText,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize entry: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nEntry to classify:\n\n")
	sb.Write(entryJSON)

	return sb.String(), nil
}

// classifyEntries runs the oracle over all entries with bounded
// concurrency. Verdicts land at the index of their entry so merge order
// stays the workbook order regardless of completion order. Any oracle
// failure cancels the remaining calls and fails the batch.
func classifyEntries(
	ctx context.Context,
	oracle Oracle,
	entries []vocabularies.RawEntry,
) ([]*Verdict, error) {
	verdicts := make([]*Verdict, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(entries)))

	for i := range entries {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			v, err := oracle.Classify(gctx, entries[i])
			if err != nil {
				return fmt.Errorf("row %d (%s): %w", entries[i].Row, entries[i].Code, err)
			}

			verdicts[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return verdicts, nil
}

func workerCount(entryCount int) int {
	return max(min(runtime.NumCPU(), entryCount), 1)
}
