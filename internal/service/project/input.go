package project

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

// Wire formats for the optional deadline fields.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Title        string
	Description  *string
	DeadlineDate *string // "YYYY-MM-DD"
	DeadlineTime *string // "HH:MM"
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	errs = append(errs, validateDeadline(i.DeadlineDate, i.DeadlineTime, false)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds the parameters for a partial project update.
// nil = don't change; ptr("") = clear the nullable field.
type UpdateProjectInput struct {
	ProjectID    uuid.UUID
	Title        *string
	Description  *string
	DeadlineDate *string
	DeadlineTime *string
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.DeadlineDate == nil && i.DeadlineTime == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > 200 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}

	errs = append(errs, validateDeadline(i.DeadlineDate, i.DeadlineTime, true)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateDeadline checks the deadline date/time wire strings. When
// allowClear is true an empty string means "clear" and passes.
func validateDeadline(date, timeOfDay *string, allowClear bool) []domain.FieldError {
	var errs []domain.FieldError

	if date != nil && !(allowClear && *date == "") {
		d, err := time.Parse(dateLayout, *date)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "deadline_date", Message: "must be YYYY-MM-DD"})
		} else if d.Before(todayUTC()) {
			errs = append(errs, domain.FieldError{Field: "deadline_date", Message: "must not be in the past"})
		}
	}

	if timeOfDay != nil && !(allowClear && *timeOfDay == "") {
		if _, err := time.Parse(timeLayout, *timeOfDay); err != nil {
			errs = append(errs, domain.FieldError{Field: "deadline_time", Message: "must be HH:MM"})
		}
	}

	return errs
}

// todayUTC returns midnight of the current day in UTC.
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDatePtr converts a validated wire date to a *time.Time.
func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	d, _ := time.Parse(dateLayout, *s)
	return &d
}

// normalizeTimePtr canonicalizes a validated wire time to "HH:MM".
func normalizeTimePtr(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	t, _ := time.Parse(timeLayout, *s)
	formatted := t.Format(timeLayout)
	return &formatted
}
