package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kmoussa/dragoman/internal/reports"
)

// TranslateNode returns a state node that runs the composed report
// through the terminology-preserving translator.
func TranslateNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		reportVal, ok := s.Get(KeyReport)
		if !ok {
			return s, fmt.Errorf("translate: missing %s in state", KeyReport)
		}

		report, ok := reportVal.(*reports.Report)
		if !ok {
			return s, fmt.Errorf("translate: %s is not *reports.Report", KeyReport)
		}

		result, err := rt.Translator.Translate(ctx, report.Text)
		if err != nil {
			return s, fmt.Errorf("translate: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "translate node complete",
			"protected", result.Protected,
			"degraded", result.Degraded,
		)

		s = s.Set(KeyTranslation, result)
		return s, nil
	})
}
