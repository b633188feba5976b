package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// CreateTask creates a new task for the authenticated user and records the
// creation in the change ledger. Parent, project and tag references must all
// resolve to the user's own rows.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if err := s.checkParent(ctx, userID, uuid.Nil, *input.ParentID); err != nil {
			return nil, err
		}
	}
	if input.ProjectID != nil {
		if err := s.checkProject(ctx, userID, *input.ProjectID); err != nil {
			return nil, err
		}
	}
	if err := s.checkTags(ctx, userID, input.TagIDs); err != nil {
		return nil, err
	}

	priority := domain.MinPriority
	if input.Priority != nil {
		priority = *input.Priority
	}

	completed := false
	if input.Completed != nil {
		completed = *input.Completed
	}

	var task *domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		task, createErr = s.tasks.Create(txCtx, userID, &domain.Task{
			ParentID:          input.ParentID,
			ProjectID:         input.ProjectID,
			Title:             strings.TrimSpace(input.Title),
			Description:       trimOrNil(input.Description),
			DeadlineDate:      parseDatePtr(input.DeadlineDate),
			DeadlineTime:      normalizeTimePtr(input.DeadlineTime),
			Completed:         completed,
			OccurrenceMinutes: input.OccurrenceMinutes,
			LastOccurrence:    input.LastOccurrence,
			Priority:          priority,
			ReminderMinutes:   input.ReminderMinutes,
			TagIDs:            input.TagIDs,
		})
		if createErr != nil {
			return fmt.Errorf("create task: %w", createErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionCreated, domain.ContentTypeTask, task.ID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
	)

	return task, nil
}
