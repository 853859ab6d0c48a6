package api

import (
	"net/http"

	"github.com/kmoussa/dragoman/internal/config"
	"github.com/kmoussa/dragoman/internal/workflow"
	"github.com/kmoussa/dragoman/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Terms.Handler().Routes(),
		domain.Vocabularies.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Prompts.Handler().Routes(),
		domain.Classifier.Handler().Routes(),
		domain.Reports.Handler().Routes(),
		domain.Translator.Handler().Routes(),
		workflow.NewHandler(domain.Workflow, domain.Workflow.Logger).Routes(),
	)
}
