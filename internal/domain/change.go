package domain

import (
	"time"

	"github.com/google/uuid"
)

// Change is one row of the per-user mutation log. Rows are append-only:
// nothing ever updates or deletes them. ChangeID is assigned by the store at
// insert time and is gapless and strictly increasing per user, starting at 1.
type Change struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ChangeID    int64
	Action      Action
	ContentType ContentType
	ObjectID    string // string form of the affected entity's UUID
	CreatedAt   time.Time
}

// MaterializedChange pairs a ledger row with the current state of the entity
// it refers to. Content is nil when the entity no longer exists, for example
// an update replayed after a later delete.
type MaterializedChange struct {
	Change  Change
	Content any
}
