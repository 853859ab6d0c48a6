package translator

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kmoussa/dragoman/pkg/handlers"
	"github.com/kmoussa/dragoman/pkg/routes"
)

// Handler provides HTTP endpoints for translation operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// TranslateRequest is the JSON body for the translation endpoint.
type TranslateRequest struct {
	Text string `json:"text"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "translator"),
	}
}

// Routes returns the route group definition for translation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/translations",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Translate},
		},
	}
}

// Translate accepts a JSON body with the report text and returns the
// translation result.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Translate(r.Context(), req.Text)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
