package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// DeleteTask removes one of the authenticated user's tasks and records the
// deletion in the change ledger. Subtasks die with the parent via the store's
// cascade and get no ledger entries of their own.
func (s *Service) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if taskID == uuid.Nil {
		return domain.NewValidationError("task_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.tasks.Delete(txCtx, userID, taskID); deleteErr != nil {
			return fmt.Errorf("delete task: %w", deleteErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionDeleted, domain.ContentTypeTask, taskID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()),
	)

	return nil
}
