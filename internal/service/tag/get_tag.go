package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// GetTag returns one of the authenticated user's tags.
// A foreign or unknown id yields domain.ErrNotFound.
func (s *Service) GetTag(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if tagID == uuid.Nil {
		return nil, domain.NewValidationError("tag_id", "required")
	}

	tag, err := s.tags.Get(ctx, userID, tagID)
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}

	return tag, nil
}
