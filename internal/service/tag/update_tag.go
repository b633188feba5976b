package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// UpdateTag applies a partial update to one of the authenticated user's tags
// and records it in the change ledger.
func (s *Service) UpdateTag(ctx context.Context, input UpdateTagInput) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TagUpdateParams{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}

	var tag *domain.Tag
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		tag, updateErr = s.tags.Update(txCtx, userID, input.TagID, params)
		if updateErr != nil {
			return fmt.Errorf("update tag: %w", updateErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionUpdated, domain.ContentTypeTag, tag.ID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag updated",
		slog.String("user_id", userID.String()),
		slog.String("tag_id", tag.ID.String()),
	)

	return tag, nil
}
