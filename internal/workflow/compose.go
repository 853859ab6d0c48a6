package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kmoussa/dragoman/internal/reports"
)

// ComposeNode returns a state node that builds the English report from
// the incident description carried in state.
func ComposeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		reqVal, ok := s.Get(KeyRequest)
		if !ok {
			return s, fmt.Errorf("compose: missing %s in state", KeyRequest)
		}

		req, ok := reqVal.(reports.IncidentDescription)
		if !ok {
			return s, fmt.Errorf("compose: %s is not reports.IncidentDescription", KeyRequest)
		}

		report, err := rt.Reports.Compose(ctx, req)
		if err != nil {
			return s, fmt.Errorf("compose: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "compose node complete",
			"issues", report.Issues,
			"actions", report.Actions,
		)

		s = s.Set(KeyReport, report)
		return s, nil
	})
}
