package change

import (
	"context"
	"fmt"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// GetByChangeID returns one materialized ledger entry by its per-user
// sequence number. A sequence number from another user's ledger yields
// domain.ErrNotFound.
func (s *Service) GetByChangeID(ctx context.Context, changeID int64) (*domain.MaterializedChange, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if changeID < 1 {
		return nil, domain.NewValidationError("change_id", "must be at least 1")
	}

	c, err := s.changes.GetByChangeID(ctx, userID, changeID)
	if err != nil {
		return nil, fmt.Errorf("get change: %w", err)
	}

	return s.materialize(ctx, c)
}
