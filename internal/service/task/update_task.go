package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// UpdateTask applies a partial update to one of the authenticated user's
// tasks and records it in the change ledger. Re-parenting runs the cycle
// check; new project and tag references must resolve to the user's own rows.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if err := s.checkParent(ctx, userID, input.TaskID, *input.ParentID); err != nil {
			return nil, err
		}
	}
	if input.ProjectID != nil {
		if err := s.checkProject(ctx, userID, *input.ProjectID); err != nil {
			return nil, err
		}
	}
	if input.TagIDs != nil {
		if err := s.checkTags(ctx, userID, input.TagIDs); err != nil {
			return nil, err
		}
	}

	params := domain.TaskUpdateParams{
		Description:       input.Description,
		ParentID:          input.ParentID,
		ClearParent:       input.ClearParent,
		ProjectID:         input.ProjectID,
		ClearProject:      input.ClearProject,
		Completed:         input.Completed,
		OccurrenceMinutes: input.OccurrenceMinutes,
		LastOccurrence:    input.LastOccurrence,
		Priority:          input.Priority,
		ReminderMinutes:   input.ReminderMinutes,
		TagIDs:            input.TagIDs,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}
	if input.DeadlineDate != nil {
		if *input.DeadlineDate == "" {
			params.DeadlineDate = &time.Time{} // zero value clears
		} else {
			params.DeadlineDate = parseDatePtr(input.DeadlineDate)
		}
	}
	if input.DeadlineTime != nil {
		if *input.DeadlineTime == "" {
			empty := ""
			params.DeadlineTime = &empty
		} else {
			params.DeadlineTime = normalizeTimePtr(input.DeadlineTime)
		}
	}

	var task *domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		task, updateErr = s.tasks.Update(txCtx, userID, input.TaskID, params)
		if updateErr != nil {
			return fmt.Errorf("update task: %w", updateErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionUpdated, domain.ContentTypeTask, task.ID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
	)

	return task, nil
}
