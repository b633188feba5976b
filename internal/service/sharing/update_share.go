package sharing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// UpdateShare applies a partial update to one of the authenticated user's
// grants and records it in the change ledger. A changed target or recipient
// is re-checked the same way as at creation.
func (s *Service) UpdateShare(ctx context.Context, input UpdateShareInput) (*domain.Shared, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.SharedWith != nil {
		if err := s.checkGrantee(ctx, userID, *input.SharedWith); err != nil {
			return nil, err
		}
	}

	// Changing content_type or object_id re-points the grant, so the new
	// combination must resolve to an owned entity.
	if input.ContentType != nil || input.ObjectID != nil {
		current, err := s.shares.Get(ctx, userID, input.SharedID)
		if err != nil {
			return nil, fmt.Errorf("get share: %w", err)
		}

		contentType := current.ContentType
		if input.ContentType != nil {
			contentType = *input.ContentType
		}
		objectID := current.ObjectID
		if input.ObjectID != nil {
			objectID = *input.ObjectID
		}

		if err := s.checkTarget(ctx, userID, contentType, objectID); err != nil {
			return nil, err
		}
	}

	params := domain.SharedUpdateParams{
		SharedWith:  input.SharedWith,
		ContentType: input.ContentType,
		ObjectID:    input.ObjectID,
	}

	var grant *domain.Shared
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		grant, updateErr = s.shares.Update(txCtx, userID, input.SharedID, params)
		if updateErr != nil {
			return fmt.Errorf("update share: %w", updateErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionUpdated, domain.ContentTypeShared, grant.ID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "share updated",
		slog.String("user_id", userID.String()),
		slog.String("shared_id", grant.ID.String()),
	)

	return grant, nil
}
