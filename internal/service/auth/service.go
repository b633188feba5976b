// Package auth implements account and session management: registration,
// password login, refresh token rotation and logout. Passwords are bcrypt
// hashed; refresh tokens are stored hashed and rotated on every refresh.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/config"
	"github.com/mpetrenko/tasktrail/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, tokenID uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	GenerateRefreshToken() (raw string, hash string, err error)
	HashToken(raw string) string
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	jwt    jwtManager
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		jwt:    jwt,
		cfg:    cfg,
	}
}

// AuthResult is the outcome of a successful register/login/refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

// issueTokens generates an access token and a fresh refresh token for the
// user, stores the refresh token hash, and returns both raw tokens.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.RefreshTokenTTL)
	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, expiresAt); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}

// DeleteExpiredTokens sweeps refresh tokens past their expiry.
func (s *Service) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	deleted, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}

	if deleted > 0 {
		s.log.InfoContext(ctx, "expired refresh tokens deleted",
			slog.Int64("count", deleted))
	}

	return deleted, nil
}
