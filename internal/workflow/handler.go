package workflow

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kmoussa/dragoman/internal/reports"
	"github.com/kmoussa/dragoman/internal/terms"
	"github.com/kmoussa/dragoman/internal/translator"
	"github.com/kmoussa/dragoman/pkg/handlers"
	"github.com/kmoussa/dragoman/pkg/routes"
)

// Handler provides the HTTP endpoint for bilingual report composition.
type Handler struct {
	rt     *Runtime
	logger *slog.Logger
}

// NewHandler creates a Handler over the given workflow runtime.
func NewHandler(rt *Runtime, logger *slog.Logger) *Handler {
	return &Handler{
		rt:     rt,
		logger: logger.With("handler", "workflow"),
	}
}

// Routes returns the route group definition for bilingual report endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/reports",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/bilingual", Handler: h.Bilingual},
		},
	}
}

// Bilingual accepts a JSON incident description and returns the composed
// report alongside its translation.
func (h *Handler) Bilingual(w http.ResponseWriter, r *http.Request) {
	var req reports.IncidentDescription
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := Execute(r.Context(), h.rt, req)
	if err != nil {
		handlers.RespondError(w, h.logger, mapStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// mapStatus surfaces the underlying domain statuses through the workflow
// error chain.
func mapStatus(err error) int {
	switch {
	case terms.IsUnknownTerm(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, reports.ErrEmptyRequest):
		return http.StatusBadRequest
	case errors.Is(err, reports.ErrGenerationUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, translator.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, translator.ErrIntegrity):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
