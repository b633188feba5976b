package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/internal/service/tag"
)

// tagService defines the minimal interface needed by TagHandler.
type tagService interface {
	CreateTag(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error)
	GetTag(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]*domain.Tag, error)
	UpdateTag(ctx context.Context, input tag.UpdateTagInput) (*domain.Tag, error)
	DeleteTag(ctx context.Context, tagID uuid.UUID) error
}

// TagHandler serves the /tags endpoints.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tag")}
}

type tagRequest struct {
	Title *string `json:"title"`
}

// Create handles POST /tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := tag.CreateTagInput{}
	if req.Title != nil {
		input.Title = *req.Title
	}

	created, err := h.svc.CreateTag(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTagResponse(created))
}

// Get handles GET /tags/{id}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	t, err := h.svc.GetTag(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(t))
}

// List handles GET /tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	results := make([]tagResponse, len(tags))
	for i, t := range tags {
		results[i] = toTagResponse(t)
	}

	writeJSON(w, http.StatusOK, results)
}

// Update handles PATCH /tags/{id}.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateTag(r.Context(), tag.UpdateTagInput{
		TagID: id,
		Title: req.Title,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(updated))
}

// Delete handles DELETE /tags/{id}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.DeleteTag(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
