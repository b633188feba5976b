package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

// Refresh exchanges a valid refresh token for a fresh token pair. The used
// token is revoked (rotation): a revoked, expired or unknown token fails
// with domain.ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, rawRefreshToken string) (*AuthResult, error) {
	if rawRefreshToken == "" {
		return nil, domain.ErrUnauthorized
	}

	stored, err := s.tokens.GetByHash(ctx, s.jwt.HashToken(rawRefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}

	if !stored.IsActive(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := s.tokens.Revoke(ctx, stored.ID); err != nil {
		return nil, fmt.Errorf("revoke refresh token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "tokens refreshed",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
