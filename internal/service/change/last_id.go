package change

import (
	"context"
	"fmt"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// GetLastID returns the authenticated user's highest change_id, or 0 for an
// empty ledger. Clients use it as their sync checkpoint.
func (s *Service) GetLastID(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	last, err := s.changes.GetLastID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("last change_id: %w", err)
	}

	return last, nil
}
