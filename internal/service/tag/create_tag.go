package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// CreateTag creates a new tag for the authenticated user and records the
// creation in the change ledger.
func (s *Service) CreateTag(ctx context.Context, input CreateTagInput) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var tag *domain.Tag
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		tag, createErr = s.tags.Create(txCtx, userID, &domain.Tag{
			Title: strings.TrimSpace(input.Title),
		})
		if createErr != nil {
			return fmt.Errorf("create tag: %w", createErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionCreated, domain.ContentTypeTag, tag.ID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag created",
		slog.String("user_id", userID.String()),
		slog.String("tag_id", tag.ID.String()),
	)

	return tag, nil
}
