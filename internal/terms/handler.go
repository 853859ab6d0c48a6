package terms

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kmoussa/dragoman/pkg/handlers"
	"github.com/kmoussa/dragoman/pkg/pagination"
	"github.com/kmoussa/dragoman/pkg/routes"
)

// Handler provides HTTP endpoints for term dictionary operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// SnapshotStatus summarizes the active dictionary snapshot.
type SnapshotStatus struct {
	Terms      int              `json:"terms"`
	Categories map[Category]int `json:"categories"`
	LoadedAt   time.Time        `json:"loaded_at"`
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "terms"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for term endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/terms",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/snapshot", Handler: h.Snapshot},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "POST", Pattern: "/reload", Handler: h.Reload},
		},
	}
}

// List returns a paginated list of terms with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single term by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("invalid term id"))
		return
	}

	t, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, t)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching terms.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Snapshot reports the size and age of the active dictionary snapshot.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.sys.Snapshot()

	status := SnapshotStatus{
		Terms:      snap.Len(),
		Categories: make(map[Category]int, len(Categories())),
		LoadedAt:   snap.LoadedAt(),
	}
	for _, c := range Categories() {
		status.Categories[c] = snap.CategoryLen(c)
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}

// Reload rebuilds the dictionary snapshot from persisted terms.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sys.Reload(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	status := SnapshotStatus{
		Terms:      snap.Len(),
		Categories: make(map[Category]int, len(Categories())),
		LoadedAt:   snap.LoadedAt(),
	}
	for _, c := range Categories() {
		status.Categories[c] = snap.CategoryLen(c)
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}
