package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// DeleteProject removes one of the authenticated user's projects and records
// the deletion in the change ledger. Tasks attached to the project are
// removed by the store's cascade; they get no ledger entries of their own,
// only the project deletion is logged.
func (s *Service) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if projectID == uuid.Nil {
		return domain.NewValidationError("project_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.projects.Delete(txCtx, userID, projectID); deleteErr != nil {
			return fmt.Errorf("delete project: %w", deleteErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionDeleted, domain.ContentTypeProject, projectID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
	)

	return nil
}
