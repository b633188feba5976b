package task

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

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	Title             string
	Description       *string
	DeadlineDate      *string // "YYYY-MM-DD"
	DeadlineTime      *string // "HH:MM"
	ParentID          *uuid.UUID
	ProjectID         *uuid.UUID
	Completed         *bool
	OccurrenceMinutes *int
	LastOccurrence    *time.Time
	Priority          *int // defaults to MinPriority
	ReminderMinutes   *int
	TagIDs            []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	errs = append(errs, validatePriority(i.Priority)...)
	errs = append(errs, validateMinutes("occurrence_minutes", i.OccurrenceMinutes)...)
	errs = append(errs, validateMinutes("reminder_minutes", i.ReminderMinutes)...)
	errs = append(errs, validateDeadline(i.DeadlineDate, i.DeadlineTime, false)...)
	errs = append(errs, validateTagIDs(i.TagIDs)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTaskInput holds the parameters for a partial task update.
// nil = don't change; ptr("") = clear; ClearParent/ClearProject detach;
// TagIDs non-nil replaces the whole tag set.
type UpdateTaskInput struct {
	TaskID            uuid.UUID
	Title             *string
	Description       *string
	DeadlineDate      *string
	DeadlineTime      *string
	ParentID          *uuid.UUID
	ClearParent       bool
	ProjectID         *uuid.UUID
	ClearProject      bool
	Completed         *bool
	OccurrenceMinutes *int
	LastOccurrence    *time.Time
	Priority          *int
	ReminderMinutes   *int
	TagIDs            []uuid.UUID
}

// isEmpty reports whether nothing was provided.
func (i UpdateTaskInput) isEmpty() bool {
	return i.Title == nil && i.Description == nil && i.DeadlineDate == nil &&
		i.DeadlineTime == nil && i.ParentID == nil && !i.ClearParent &&
		i.ProjectID == nil && !i.ClearProject && i.Completed == nil &&
		i.OccurrenceMinutes == nil && i.LastOccurrence == nil && i.Priority == nil &&
		i.ReminderMinutes == nil && i.TagIDs == nil
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if i.isEmpty() {
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
	if i.ParentID != nil && i.ClearParent {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "cannot set and clear at once"})
	}
	if i.ProjectID != nil && i.ClearProject {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "cannot set and clear at once"})
	}

	errs = append(errs, validatePriority(i.Priority)...)
	errs = append(errs, validateMinutes("occurrence_minutes", i.OccurrenceMinutes)...)
	errs = append(errs, validateMinutes("reminder_minutes", i.ReminderMinutes)...)
	errs = append(errs, validateDeadline(i.DeadlineDate, i.DeadlineTime, true)...)
	errs = append(errs, validateTagIDs(i.TagIDs)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePriority(p *int) []domain.FieldError {
	if p == nil {
		return nil
	}
	if *p < domain.MinPriority || *p > domain.MaxPriority {
		return []domain.FieldError{{Field: "priority", Message: "must be between 1 and 5"}}
	}
	return nil
}

func validateMinutes(field string, m *int) []domain.FieldError {
	if m == nil {
		return nil
	}
	if *m <= 0 {
		return []domain.FieldError{{Field: field, Message: "must be positive"}}
	}
	return nil
}

func validateTagIDs(ids []uuid.UUID) []domain.FieldError {
	for _, id := range ids {
		if id == uuid.Nil {
			return []domain.FieldError{{Field: "tags", Message: "contains an empty id"}}
		}
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
