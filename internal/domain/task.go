package domain

import (
	"time"

	"github.com/google/uuid"
)

// Priority bounds for tasks.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Task is the central entity. Tasks may nest via ParentID (tree, cycles
// rejected at the service layer), belong to at most one project, and carry a
// set of tags. Deleting a parent task or the owning project cascades.
type Task struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	ParentID          *uuid.UUID
	ProjectID         *uuid.UUID
	Title             string
	Description       *string
	DeadlineDate      *time.Time // date component only
	DeadlineTime      *string    // wall-clock "HH:MM"
	Completed         bool
	OccurrenceMinutes *int // recurrence interval
	LastOccurrence    *time.Time
	Priority          int
	ReminderMinutes   *int
	TagIDs            []uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TaskUpdateParams carries a partial update. Nil means "leave unchanged".
// ClearParent/ClearProject detach the reference; TagIDs, when non-nil,
// replaces the whole tag set.
type TaskUpdateParams struct {
	Title             *string
	Description       *string
	DeadlineDate      *time.Time
	DeadlineTime      *string
	Completed         *bool
	OccurrenceMinutes *int
	LastOccurrence    *time.Time
	Priority          *int
	ReminderMinutes   *int
	ParentID          *uuid.UUID
	ClearParent       bool
	ProjectID         *uuid.UUID
	ClearProject      bool
	TagIDs            []uuid.UUID
}

// IsEmpty reports whether no field was provided.
func (p TaskUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DeadlineDate == nil &&
		p.DeadlineTime == nil && p.Completed == nil && p.OccurrenceMinutes == nil &&
		p.LastOccurrence == nil && p.Priority == nil && p.ReminderMinutes == nil &&
		p.ParentID == nil && !p.ClearParent && p.ProjectID == nil && !p.ClearProject &&
		p.TagIDs == nil
}
