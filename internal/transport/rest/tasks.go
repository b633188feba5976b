package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/internal/service/task"
)

// taskService defines the minimal interface needed by TaskHandler.
type taskService interface {
	CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

// TaskHandler serves the /tasks endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

// taskRequest is shared by create and partial update. References arrive as
// strings: on update, an empty parentId/projectId detaches the reference.
type taskRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	DeadlineDate      *string    `json:"deadlineDate"`
	DeadlineTime      *string    `json:"deadlineTime"`
	ParentID          *string    `json:"parentId"`
	ProjectID         *string    `json:"projectId"`
	Completed         *bool      `json:"completed"`
	OccurrenceMinutes *int       `json:"occurrenceMinutes"`
	LastOccurrence    *time.Time `json:"lastOccurrence"`
	Priority          *int       `json:"priority"`
	ReminderMinutes   *int       `json:"reminderMinutes"`
	Tags              []string   `json:"tags"`
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := task.CreateTaskInput{
		Description:       req.Description,
		DeadlineDate:      req.DeadlineDate,
		DeadlineTime:      req.DeadlineTime,
		Completed:         req.Completed,
		OccurrenceMinutes: req.OccurrenceMinutes,
		LastOccurrence:    req.LastOccurrence,
		Priority:          req.Priority,
		ReminderMinutes:   req.ReminderMinutes,
	}
	if req.Title != nil {
		input.Title = *req.Title
	}

	parentID, _, err := parseRefPtr("parentId", req.ParentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.ParentID = parentID

	projectID, _, err := parseRefPtr("projectId", req.ProjectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.ProjectID = projectID

	tagIDs, err := parseTagIDs(req.Tags)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.TagIDs = tagIDs

	created, err := h.svc.CreateTask(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(created))
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// List handles GET /tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ListTasks(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	results := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		results[i] = toTaskResponse(t)
	}

	writeJSON(w, http.StatusOK, results)
}

// Update handles PATCH /tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := task.UpdateTaskInput{
		TaskID:            id,
		Title:             req.Title,
		Description:       req.Description,
		DeadlineDate:      req.DeadlineDate,
		DeadlineTime:      req.DeadlineTime,
		Completed:         req.Completed,
		OccurrenceMinutes: req.OccurrenceMinutes,
		LastOccurrence:    req.LastOccurrence,
		Priority:          req.Priority,
		ReminderMinutes:   req.ReminderMinutes,
	}

	parentID, clearParent, err := parseRefPtr("parentId", req.ParentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.ParentID = parentID
	input.ClearParent = clearParent

	projectID, clearProject, err := parseRefPtr("projectId", req.ProjectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.ProjectID = projectID
	input.ClearProject = clearProject

	if req.Tags != nil {
		tagIDs, err := parseTagIDs(req.Tags)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		if tagIDs == nil {
			tagIDs = []uuid.UUID{}
		}
		input.TagIDs = tagIDs
	}

	updated, err := h.svc.UpdateTask(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(updated))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseRefPtr decodes an optional reference field: nil leaves the reference
// unchanged, "" clears it, anything else must be a UUID.
func parseRefPtr(field string, s *string) (*uuid.UUID, bool, error) {
	if s == nil {
		return nil, false, nil
	}
	if *s == "" {
		return nil, true, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, false, domain.NewValidationError(field, "must be a valid id")
	}
	return &id, false, nil
}

// parseTagIDs decodes the tags field. A nil slice means "not provided".
func parseTagIDs(tags []string) ([]uuid.UUID, error) {
	if tags == nil {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(tags))
	for i, s := range tags {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domain.NewValidationError("tags", "must contain valid ids")
		}
		ids[i] = id
	}
	return ids, nil
}
