package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

const dateLayout = "2006-01-02"

type projectResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	DeadlineDate *string   `json:"deadlineDate,omitempty"`
	DeadlineTime *string   `json:"deadlineTime,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:           p.ID.String(),
		Title:        p.Title,
		Description:  p.Description,
		DeadlineDate: formatDatePtr(p.DeadlineDate),
		DeadlineTime: p.DeadlineTime,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type tagResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTagResponse(t *domain.Tag) tagResponse {
	return tagResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type taskResponse struct {
	ID                string     `json:"id"`
	ParentID          *string    `json:"parentId,omitempty"`
	ProjectID         *string    `json:"projectId,omitempty"`
	Title             string     `json:"title"`
	Description       *string    `json:"description,omitempty"`
	DeadlineDate      *string    `json:"deadlineDate,omitempty"`
	DeadlineTime      *string    `json:"deadlineTime,omitempty"`
	Completed         bool       `json:"completed"`
	OccurrenceMinutes *int       `json:"occurrenceMinutes,omitempty"`
	LastOccurrence    *time.Time `json:"lastOccurrence,omitempty"`
	Priority          int        `json:"priority"`
	ReminderMinutes   *int       `json:"reminderMinutes,omitempty"`
	Tags              []string   `json:"tags"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	tags := make([]string, len(t.TagIDs))
	for i, id := range t.TagIDs {
		tags[i] = id.String()
	}

	return taskResponse{
		ID:                t.ID.String(),
		ParentID:          uuidPtrToString(t.ParentID),
		ProjectID:         uuidPtrToString(t.ProjectID),
		Title:             t.Title,
		Description:       t.Description,
		DeadlineDate:      formatDatePtr(t.DeadlineDate),
		DeadlineTime:      t.DeadlineTime,
		Completed:         t.Completed,
		OccurrenceMinutes: t.OccurrenceMinutes,
		LastOccurrence:    t.LastOccurrence,
		Priority:          t.Priority,
		ReminderMinutes:   t.ReminderMinutes,
		Tags:              tags,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

type taskListResponse struct {
	Count   int            `json:"count"`
	Results []taskResponse `json:"results"`
}

func toTaskListResponse(tasks []*domain.Task) taskListResponse {
	results := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		results[i] = toTaskResponse(t)
	}
	return taskListResponse{Count: len(results), Results: results}
}

type sharedResponse struct {
	ID          string    `json:"id"`
	SharedWith  string    `json:"sharedWith"`
	ContentType string    `json:"contentType"`
	ObjectID    string    `json:"objectId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toSharedResponse(s *domain.Shared) sharedResponse {
	return sharedResponse{
		ID:          s.ID.String(),
		SharedWith:  s.SharedWith.String(),
		ContentType: s.ContentType.String(),
		ObjectID:    s.ObjectID.String(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type changeResponse struct {
	ChangeID    int64     `json:"changeId"`
	Action      string    `json:"action"`
	ContentType string    `json:"contentType"`
	ObjectID    string    `json:"objectId"`
	CreatedAt   time.Time `json:"createdAt"`
	Content     any       `json:"content"` // null when the entity is gone
}

func toChangeResponse(m *domain.MaterializedChange) changeResponse {
	resp := changeResponse{
		ChangeID:    m.Change.ChangeID,
		Action:      m.Change.Action.String(),
		ContentType: m.Change.ContentType.String(),
		ObjectID:    m.Change.ObjectID,
		CreatedAt:   m.Change.CreatedAt,
	}

	switch content := m.Content.(type) {
	case *domain.Project:
		resp.Content = toProjectResponse(content)
	case *domain.Task:
		resp.Content = toTaskResponse(content)
	case *domain.Tag:
		resp.Content = toTagResponse(content)
	case *domain.Shared:
		resp.Content = toSharedResponse(content)
	}

	return resp
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID.String(),
		Email:    u.Email,
		Username: u.Username,
	}
}

func formatDatePtr(d *time.Time) *string {
	if d == nil {
		return nil
	}
	formatted := d.Format(dateLayout)
	return &formatted
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
