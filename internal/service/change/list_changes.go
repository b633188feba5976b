package change

import (
	"context"
	"fmt"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// ListChanges returns the authenticated user's materialized ledger entries
// with change_id greater than sinceID, ascending. sinceID 0 replays the whole
// ledger.
func (s *Service) ListChanges(ctx context.Context, sinceID int64) ([]*domain.MaterializedChange, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if sinceID < 0 {
		return nil, domain.NewValidationError("since", "must not be negative")
	}

	changes, err := s.changes.List(ctx, userID, sinceID)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}

	materialized := make([]*domain.MaterializedChange, 0, len(changes))
	for _, c := range changes {
		m, err := s.materialize(ctx, c)
		if err != nil {
			return nil, err
		}
		materialized = append(materialized, m)
	}

	return materialized, nil
}
