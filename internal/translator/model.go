package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kmoussa/dragoman/internal/prompts"
)

// Model translates a single line of placeholder-bearing text.
type Model interface {
	Translate(ctx context.Context, line string) (string, error)
}

type agentModel struct {
	agent   gaconfig.AgentConfig
	prompts prompts.System
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
}

// NewModel creates a Model backed by the configured language model. Calls
// are bounded by the request timeout and guarded by a circuit breaker;
// both failure modes surface as ErrUnavailable.
func NewModel(cfg gaconfig.AgentConfig, ps prompts.System, opts Options) Model {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "translation-model",
		Timeout: opts.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerMaxFailures
		},
	})

	return &agentModel{
		agent:   cfg,
		prompts: ps,
		breaker: breaker,
		timeout: opts.RequestTimeout,
	}
}

func (m *agentModel) Translate(ctx context.Context, line string) (string, error) {
	prompt, err := m.composePrompt(ctx, line)
	if err != nil {
		return "", err
	}

	result, err := m.breaker.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, m.timeout)
		defer cancel()

		a, err := agent.New(&m.agent)
		if err != nil {
			return nil, fmt.Errorf("create agent: %w", err)
		}

		resp, err := a.Chat(callCtx, prompt)
		if err != nil {
			return nil, err
		}

		return strings.TrimSpace(resp.Content()), nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: circuit breaker open", ErrUnavailable)
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return result.(string), nil
}

func (m *agentModel) composePrompt(ctx context.Context, line string) (string, error) {
	instructions, err := m.prompts.Instructions(ctx, prompts.StageTranslate)
	if err != nil {
		return "", fmt.Errorf("load translate instructions: %w", err)
	}

	spec, err := m.prompts.Spec(ctx, prompts.StageTranslate)
	if err != nil {
		return "", fmt.Errorf("load translate spec: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nText to translate:\n\n")
	sb.WriteString(line)

	return sb.String(), nil
}
