package reports

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kmoussa/dragoman/pkg/handlers"
	"github.com/kmoussa/dragoman/pkg/routes"
)

// Handler provides HTTP endpoints for report composition.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "reports"),
	}
}

// Routes returns the route group definition for report endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/reports",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Compose},
		},
	}
}

// Compose accepts a JSON incident description and returns the composed report.
func (h *Handler) Compose(w http.ResponseWriter, r *http.Request) {
	var req IncidentDescription
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	report, err := h.sys.Compose(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}
