// Package token implements the refresh-token repository using PostgreSQL.
// Tokens are stored hashed; the raw value never touches the database.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mpetrenko/tasktrail/internal/adapter/postgres"
	"github.com/mpetrenko/tasktrail/internal/domain"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tokenColumns = `id, user_id, token_hash, expires_at, revoked_at, created_at`

const createTokenSQL = `
INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
VALUES ($1, $2, $3)
RETURNING ` + tokenColumns

const getTokenByHashSQL = `
SELECT ` + tokenColumns + `
FROM refresh_tokens
WHERE token_hash = $1`

const revokeTokenSQL = `
UPDATE refresh_tokens
SET revoked_at = now()
WHERE id = $1 AND revoked_at IS NULL`

const revokeAllTokensSQL = `
UPDATE refresh_tokens
SET revoked_at = now()
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteExpiredTokensSQL = `
DELETE FROM refresh_tokens
WHERE expires_at < now()`

// Create stores a hashed refresh token.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanToken(querier.QueryRow(ctx, createTokenSQL, userID, tokenHash, expiresAt))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", userID)
	}

	return t, nil
}

// GetByHash looks a token up by its hash.
// Returns domain.ErrNotFound if no such token exists.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanToken(querier.QueryRow(ctx, getTokenByHashSQL, tokenHash))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", "by-hash")
	}

	return t, nil
}

// Revoke marks a single token revoked. Revoking an already-revoked token is
// not an error.
func (r *Repo) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, revokeTokenSQL, tokenID); err != nil {
		return postgres.MapError(err, "refresh_token", tokenID)
	}

	return nil
}

// RevokeAllByUser revokes every active token of a user (logout everywhere).
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, revokeAllTokensSQL, userID); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}

	return nil
}

// DeleteExpired removes tokens past their expiry and returns the count.
func (r *Repo) DeleteExpired(ctx context.Context) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteExpiredTokensSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}

// scanToken scans one row from any query selecting tokenColumns.
func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var (
		t         domain.RefreshToken
		revokedAt pgtype.Timestamptz
	)

	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &revokedAt, &t.CreatedAt)
	if err != nil {
		return nil, err
	}

	if revokedAt.Valid {
		rt := revokedAt.Time
		t.RevokedAt = &rt
	}

	return &t, nil
}
