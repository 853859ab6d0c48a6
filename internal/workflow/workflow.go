package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kmoussa/dragoman/internal/reports"
	"github.com/kmoussa/dragoman/internal/translator"
)

// State keys shared between workflow nodes.
const (
	KeyRequest     = "request"
	KeyReport      = "report"
	KeyTranslation = "translation"
)

// BilingualReport carries the composed English report together with its
// terminology-preserving translation.
type BilingualReport struct {
	Source      *reports.Report    `json:"source"`
	Translation *translator.Result `json:"translation"`
	CompletedAt time.Time          `json:"completed_at"`
}

// Execute runs the bilingual report workflow for a single incident
// description. It builds the state graph (compose → translate), executes
// it, and extracts the BilingualReport from the final state.
func Execute(
	ctx context.Context,
	rt *Runtime,
	req reports.IncidentDescription,
) (*BilingualReport, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyRequest, req)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("dragoman-bilingual")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("compose", ComposeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("translate", TranslateNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("compose", "translate", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("compose"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("translate"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*BilingualReport, error) {
	reportVal, ok := s.Get(KeyReport)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyReport)
	}

	report, ok := reportVal.(*reports.Report)
	if !ok {
		return nil, fmt.Errorf("%s is not *reports.Report", KeyReport)
	}

	translationVal, ok := s.Get(KeyTranslation)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyTranslation)
	}

	translation, ok := translationVal.(*translator.Result)
	if !ok {
		return nil, fmt.Errorf("%s is not *translator.Result", KeyTranslation)
	}

	return &BilingualReport{
		Source:      report,
		Translation: translation,
		CompletedAt: time.Now().UTC(),
	}, nil
}
