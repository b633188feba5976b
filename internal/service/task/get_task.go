package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// GetTask returns one of the authenticated user's tasks.
// A foreign or unknown id yields domain.ErrNotFound.
func (s *Service) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if taskID == uuid.Nil {
		return nil, domain.NewValidationError("task_id", "required")
	}

	task, err := s.tasks.Get(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	return task, nil
}
