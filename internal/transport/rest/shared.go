package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/internal/service/sharing"
)

// sharingService defines the minimal interface needed by SharedHandler.
type sharingService interface {
	CreateShare(ctx context.Context, input sharing.CreateShareInput) (*domain.Shared, error)
	GetShare(ctx context.Context, sharedID uuid.UUID) (*domain.Shared, error)
	ListGrants(ctx context.Context, withMe bool) ([]*domain.Shared, error)
	UpdateShare(ctx context.Context, input sharing.UpdateShareInput) (*domain.Shared, error)
	DeleteShare(ctx context.Context, sharedID uuid.UUID) error
	ResolveTasks(ctx context.Context, withMe bool) ([]*domain.Task, error)
}

// SharedHandler serves the /shared endpoints.
type SharedHandler struct {
	svc sharingService
	log *slog.Logger
}

// NewSharedHandler creates a SharedHandler.
func NewSharedHandler(svc sharingService, logger *slog.Logger) *SharedHandler {
	return &SharedHandler{svc: svc, log: logger.With("handler", "shared")}
}

type sharedRequest struct {
	SharedWith  *string `json:"sharedWith"`
	ContentType *string `json:"contentType"`
	ObjectID    *string `json:"objectId"`
}

// Create handles POST /shared.
func (h *SharedHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sharedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := sharing.CreateShareInput{}
	if req.SharedWith != nil {
		id, err := uuid.Parse(*req.SharedWith)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("shared_with", "must be a valid id"))
			return
		}
		input.SharedWith = id
	}
	if req.ContentType != nil {
		input.ContentType = domain.ContentType(*req.ContentType)
	}
	if req.ObjectID != nil {
		id, err := uuid.Parse(*req.ObjectID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("object_id", "must be a valid id"))
			return
		}
		input.ObjectID = id
	}

	created, err := h.svc.CreateShare(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSharedResponse(created))
}

// Get handles GET /shared/{id}.
func (h *SharedHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	s, err := h.svc.GetShare(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSharedResponse(s))
}

// List handles GET /shared?with-me=true|false.
func (h *SharedHandler) List(w http.ResponseWriter, r *http.Request) {
	grants, err := h.svc.ListGrants(r.Context(), withMeParam(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	results := make([]sharedResponse, len(grants))
	for i, s := range grants {
		results[i] = toSharedResponse(s)
	}

	writeJSON(w, http.StatusOK, results)
}

// Update handles PATCH /shared/{id}.
func (h *SharedHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req sharedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := sharing.UpdateShareInput{SharedID: id}
	if req.SharedWith != nil {
		parsed, err := uuid.Parse(*req.SharedWith)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("shared_with", "must be a valid id"))
			return
		}
		input.SharedWith = &parsed
	}
	if req.ContentType != nil {
		contentType := domain.ContentType(*req.ContentType)
		input.ContentType = &contentType
	}
	if req.ObjectID != nil {
		parsed, err := uuid.Parse(*req.ObjectID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("object_id", "must be a valid id"))
			return
		}
		input.ObjectID = &parsed
	}

	updated, err := h.svc.UpdateShare(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSharedResponse(updated))
}

// Delete handles DELETE /shared/{id}.
func (h *SharedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.DeleteShare(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Tasks handles GET /shared/tasks?with-me=true|false.
func (h *SharedHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ResolveTasks(r.Context(), withMeParam(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskListResponse(tasks))
}

func withMeParam(r *http.Request) bool {
	return r.URL.Query().Get("with-me") == "true"
}
