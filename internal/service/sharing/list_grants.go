package sharing

import (
	"context"
	"fmt"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// ListGrants lists grants for the authenticated user. withMe false lists
// grants the user created; withMe true lists grants where the user is the
// recipient (a read-only view).
func (s *Service) ListGrants(ctx context.Context, withMe bool) ([]*domain.Shared, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		grants []*domain.Shared
		err    error
	)
	if withMe {
		grants, err = s.shares.ListByRecipient(ctx, userID)
	} else {
		grants, err = s.shares.ListByGrantor(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}

	return grants, nil
}
