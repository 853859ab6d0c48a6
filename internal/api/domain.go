package api

import (
	"github.com/kmoussa/dragoman/internal/classifier"
	"github.com/kmoussa/dragoman/internal/config"
	"github.com/kmoussa/dragoman/internal/prompts"
	"github.com/kmoussa/dragoman/internal/reports"
	"github.com/kmoussa/dragoman/internal/terms"
	"github.com/kmoussa/dragoman/internal/translator"
	"github.com/kmoussa/dragoman/internal/vocabularies"
	"github.com/kmoussa/dragoman/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Terms        terms.System
	Vocabularies vocabularies.System
	Prompts      prompts.System
	Classifier   classifier.System
	Reports      reports.System
	Translator   translator.System
	Workflow     *workflow.Runtime
}

// NewDomain creates all domain systems from the API runtime. The term
// dictionary snapshot is registered for loading during startup.
func NewDomain(runtime *Runtime, cfg *config.Config) *Domain {
	termsSystem := terms.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)
	termsSystem.Start(runtime.Lifecycle)

	vocabsSystem := vocabularies.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	promptsSystem := prompts.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	classifierSystem := classifier.New(
		runtime.Database.Connection(),
		runtime.Agent,
		runtime.Logger,
		runtime.Pagination,
		termsSystem,
		vocabsSystem,
		promptsSystem,
	)

	reportsSystem := reports.New(
		runtime.Agent,
		promptsSystem,
		termsSystem,
		runtime.Logger,
	)

	translatorSystem := translator.New(
		runtime.Agent,
		promptsSystem,
		termsSystem,
		cfg.Translator.Options(),
		runtime.Logger,
	)

	workflowRuntime := &workflow.Runtime{
		Reports:    reportsSystem,
		Translator: translatorSystem,
		Logger:     runtime.Logger.With("workflow", "bilingual"),
	}

	return &Domain{
		Terms:        termsSystem,
		Vocabularies: vocabsSystem,
		Prompts:      promptsSystem,
		Classifier:   classifierSystem,
		Reports:      reportsSystem,
		Translator:   translatorSystem,
		Workflow:     workflowRuntime,
	}
}
