package domain

import (
	"time"

	"github.com/google/uuid"
)

// Shared is a grant: the owner exposes one of their entities to another
// user. The referenced entity is identified loosely by ContentType+ObjectID;
// the grant is not cascaded when the entity is deleted, so resolution must
// tolerate dangling references.
type Shared struct {
	ID          uuid.UUID
	UserID      uuid.UUID // grantor (owner of the referenced entity)
	SharedWith  uuid.UUID // grantee
	ContentType ContentType
	ObjectID    uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SharedUpdateParams carries a partial update of a grant.
type SharedUpdateParams struct {
	SharedWith  *uuid.UUID
	ContentType *ContentType
	ObjectID    *uuid.UUID
}

// IsEmpty reports whether no field was provided.
func (p SharedUpdateParams) IsEmpty() bool {
	return p.SharedWith == nil && p.ContentType == nil && p.ObjectID == nil
}
