package sharing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// GetShare returns one of the authenticated user's own grants.
// A foreign or unknown id yields domain.ErrNotFound.
func (s *Service) GetShare(ctx context.Context, sharedID uuid.UUID) (*domain.Shared, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if sharedID == uuid.Nil {
		return nil, domain.NewValidationError("shared_id", "required")
	}

	grant, err := s.shares.Get(ctx, userID, sharedID)
	if err != nil {
		return nil, fmt.Errorf("get share: %w", err)
	}

	return grant, nil
}
