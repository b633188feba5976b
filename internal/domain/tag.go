package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a user-defined label attached to tasks (many-to-many). Deleting a
// tag detaches it from tasks without touching them.
type Tag struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TagUpdateParams carries a partial update.
type TagUpdateParams struct {
	Title *string
}

// IsEmpty reports whether no field was provided.
func (p TagUpdateParams) IsEmpty() bool { return p.Title == nil }
