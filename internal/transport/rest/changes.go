package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

// changeService defines the minimal interface needed by ChangeHandler.
type changeService interface {
	ListChanges(ctx context.Context, sinceID int64) ([]*domain.MaterializedChange, error)
	GetByChangeID(ctx context.Context, changeID int64) (*domain.MaterializedChange, error)
	GetLastID(ctx context.Context) (int64, error)
}

// ChangeHandler serves the read-only /changes endpoints.
type ChangeHandler struct {
	svc changeService
	log *slog.Logger
}

// NewChangeHandler creates a ChangeHandler.
func NewChangeHandler(svc changeService, logger *slog.Logger) *ChangeHandler {
	return &ChangeHandler{svc: svc, log: logger.With("handler", "change")}
}

// List handles GET /changes?since={id}.
func (h *ChangeHandler) List(w http.ResponseWriter, r *http.Request) {
	var sinceID int64
	if since := r.URL.Query().Get("since"); since != "" {
		parsed, err := strconv.ParseInt(since, 10, 64)
		if err != nil || parsed < 0 {
			handleError(h.log, w, r, domain.NewValidationError("since", "must be a non-negative integer"))
			return
		}
		sinceID = parsed
	}

	changes, err := h.svc.ListChanges(r.Context(), sinceID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	results := make([]changeResponse, len(changes))
	for i, c := range changes {
		results[i] = toChangeResponse(c)
	}

	writeJSON(w, http.StatusOK, results)
}

// Get handles GET /changes/{change_id}. The path segment is the per-user
// sequence number, not a row id.
func (h *ChangeHandler) Get(w http.ResponseWriter, r *http.Request) {
	changeID, err := strconv.ParseInt(r.PathValue("change_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	c, err := h.svc.GetByChangeID(r.Context(), changeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toChangeResponse(c))
}

// LastID handles GET /changes/last_id, the sync checkpoint primitive.
func (h *ChangeHandler) LastID(w http.ResponseWriter, r *http.Request) {
	last, err := h.svc.GetLastID(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"lastId": last})
}
