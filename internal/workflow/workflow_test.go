package workflow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/kmoussa/dragoman/internal/reports"
	"github.com/kmoussa/dragoman/internal/translator"
	"github.com/kmoussa/dragoman/internal/workflow"
)

type stubReports struct {
	reports.System
	compose func(ctx context.Context, req reports.IncidentDescription) (*reports.Report, error)
}

func (s *stubReports) Compose(ctx context.Context, req reports.IncidentDescription) (*reports.Report, error) {
	return s.compose(ctx, req)
}

type stubTranslator struct {
	translator.System
	translate func(ctx context.Context, text string) (*translator.Result, error)
}

func (s *stubTranslator) Translate(ctx context.Context, text string) (*translator.Result, error) {
	return s.translate(ctx, text)
}

func newRuntime(rep *stubReports, tr *stubTranslator) *workflow.Runtime {
	return &workflow.Runtime{
		Reports:    rep,
		Translator: tr,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestExecuteComposesAndTranslates(t *testing.T) {
	report := &reports.Report{
		Text:        "A note jam affecting the cash dispenser. The jammed notes were removed.",
		Issues:      1,
		Actions:     1,
		GeneratedAt: time.Now().UTC(),
	}

	var composedWith reports.IncidentDescription
	rep := &stubReports{
		compose: func(ctx context.Context, req reports.IncidentDescription) (*reports.Report, error) {
			composedWith = req
			return report, nil
		},
	}

	var translatedText string
	tr := &stubTranslator{
		translate: func(ctx context.Context, text string) (*translator.Result, error) {
			translatedText = text
			return &translator.Result{Text: "translated body", Protected: 2}, nil
		},
	}

	req := reports.IncidentDescription{
		Issues:  []reports.Issue{{Component: "DISP", Fault: "JAM"}},
		Actions: []string{"REPL"},
	}

	result, err := workflow.Execute(context.Background(), newRuntime(rep, tr), req)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if len(composedWith.Issues) != 1 || composedWith.Issues[0].Component != "DISP" {
		t.Errorf("compose received %+v, want the original request", composedWith)
	}
	if translatedText != report.Text {
		t.Errorf("translate received %q, want the composed report text", translatedText)
	}
	if result.Source != report {
		t.Error("source report should be the composed report")
	}
	if result.Translation.Text != "translated body" {
		t.Errorf("translation text: got %q, want translated body", result.Translation.Text)
	}
	if result.CompletedAt.IsZero() {
		t.Error("completed_at should be set")
	}
}

func TestExecuteComposeFailure(t *testing.T) {
	composeErr := errors.New("unknown component term")
	rep := &stubReports{
		compose: func(ctx context.Context, req reports.IncidentDescription) (*reports.Report, error) {
			return nil, composeErr
		},
	}

	var translateCalled bool
	tr := &stubTranslator{
		translate: func(ctx context.Context, text string) (*translator.Result, error) {
			translateCalled = true
			return &translator.Result{}, nil
		},
	}

	_, err := workflow.Execute(context.Background(), newRuntime(rep, tr), reports.IncidentDescription{})
	if err == nil {
		t.Fatal("expected error when compose fails")
	}
	if !strings.Contains(err.Error(), "compose") {
		t.Errorf("error %q should name the compose stage", err.Error())
	}
	if translateCalled {
		t.Error("translate should not run after compose failure")
	}
}

func TestExecuteTranslateFailure(t *testing.T) {
	rep := &stubReports{
		compose: func(ctx context.Context, req reports.IncidentDescription) (*reports.Report, error) {
			return &reports.Report{Text: "report body"}, nil
		},
	}

	tr := &stubTranslator{
		translate: func(ctx context.Context, text string) (*translator.Result, error) {
			return nil, errors.New("model unavailable")
		},
	}

	_, err := workflow.Execute(context.Background(), newRuntime(rep, tr), reports.IncidentDescription{})
	if err == nil {
		t.Fatal("expected error when translate fails")
	}
	if !strings.Contains(err.Error(), "translate") {
		t.Errorf("error %q should name the translate stage", err.Error())
	}
}
