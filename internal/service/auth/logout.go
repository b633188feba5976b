package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// Logout revokes every active refresh token of the authenticated user.
// Access tokens stay valid until their short TTL runs out.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", userID.String()))

	return nil
}
