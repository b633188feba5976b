package tag

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

// CreateTagInput holds the parameters for creating a tag.
type CreateTagInput struct {
	Title string
}

// Validate checks all fields and collects all errors.
func (i CreateTagInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 100 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTagInput holds the parameters for a partial tag update.
type UpdateTagInput struct {
	TagID uuid.UUID
	Title *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTagInput) Validate() error {
	var errs []domain.FieldError

	if i.TagID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tag_id", Message: "required"})
	}
	if i.Title == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	} else {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > 100 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
