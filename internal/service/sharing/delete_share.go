package sharing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// DeleteShare removes one of the authenticated user's grants and records the
// deletion in the change ledger.
func (s *Service) DeleteShare(ctx context.Context, sharedID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if sharedID == uuid.Nil {
		return domain.NewValidationError("shared_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.shares.Delete(txCtx, userID, sharedID); deleteErr != nil {
			return fmt.Errorf("delete share: %w", deleteErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionDeleted, domain.ContentTypeShared, sharedID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "share deleted",
		slog.String("user_id", userID.String()),
		slog.String("shared_id", sharedID.String()),
	)

	return nil
}
