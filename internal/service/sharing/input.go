package sharing

import (
	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

// CreateShareInput holds the parameters for creating a grant.
type CreateShareInput struct {
	SharedWith  uuid.UUID
	ContentType domain.ContentType
	ObjectID    uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateShareInput) Validate() error {
	var errs []domain.FieldError

	if i.SharedWith == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "shared_with", Message: "required"})
	}
	if !i.ContentType.IsValid() || !i.ContentType.IsShareable() {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "must be PROJECT, TASK or TAG"})
	}
	if i.ObjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "object_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateShareInput holds the parameters for a partial grant update.
type UpdateShareInput struct {
	SharedID    uuid.UUID
	SharedWith  *uuid.UUID
	ContentType *domain.ContentType
	ObjectID    *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateShareInput) Validate() error {
	var errs []domain.FieldError

	if i.SharedID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "shared_id", Message: "required"})
	}
	if i.SharedWith == nil && i.ContentType == nil && i.ObjectID == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.SharedWith != nil && *i.SharedWith == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "shared_with", Message: "required"})
	}
	if i.ContentType != nil && (!i.ContentType.IsValid() || !i.ContentType.IsShareable()) {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "must be PROJECT, TASK or TAG"})
	}
	if i.ObjectID != nil && *i.ObjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "object_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
