package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// DeleteTag removes one of the authenticated user's tags and records the
// deletion in the change ledger. The tag is detached from tasks by the
// store's cascade; tasks themselves are untouched.
func (s *Service) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if tagID == uuid.Nil {
		return domain.NewValidationError("tag_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.tags.Delete(txCtx, userID, tagID); deleteErr != nil {
			return fmt.Errorf("delete tag: %w", deleteErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionDeleted, domain.ContentTypeTag, tagID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tag deleted",
		slog.String("user_id", userID.String()),
		slog.String("tag_id", tagID.String()),
	)

	return nil
}
