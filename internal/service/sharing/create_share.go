package sharing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// CreateShare creates a grant exposing one of the authenticated user's
// entities to another user, and records the grant creation in the grantor's
// change ledger (content_type SHARED; the grant's own content_type describes
// what is being shared).
func (s *Service) CreateShare(ctx context.Context, input CreateShareInput) (*domain.Shared, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkGrantee(ctx, userID, input.SharedWith); err != nil {
		return nil, err
	}
	if err := s.checkTarget(ctx, userID, input.ContentType, input.ObjectID); err != nil {
		return nil, err
	}

	var grant *domain.Shared
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		grant, createErr = s.shares.Create(txCtx, userID, &domain.Shared{
			SharedWith:  input.SharedWith,
			ContentType: input.ContentType,
			ObjectID:    input.ObjectID,
		})
		if createErr != nil {
			return fmt.Errorf("create share: %w", createErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionCreated, domain.ContentTypeShared, grant.ID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "share created",
		slog.String("user_id", userID.String()),
		slog.String("shared_id", grant.ID.String()),
		slog.String("shared_with", grant.SharedWith.String()),
		slog.String("content_type", grant.ContentType.String()),
	)

	return grant, nil
}
