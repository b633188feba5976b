package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project groups tasks under a single owner. Deleting a project cascades to
// its tasks.
type Project struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	Description  *string
	DeadlineDate *time.Time // date component only
	DeadlineTime *string    // wall-clock "HH:MM"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProjectUpdateParams carries a partial update. Nil means "leave unchanged";
// for nullable fields a pointer to the zero value clears the column.
type ProjectUpdateParams struct {
	Title        *string
	Description  *string
	DeadlineDate *time.Time
	DeadlineTime *string
}

// IsEmpty reports whether no field was provided.
func (p ProjectUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DeadlineDate == nil && p.DeadlineTime == nil
}
