// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mpetrenko/tasktrail/internal/adapter/postgres"
	"github.com/mpetrenko/tasktrail/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, password_hash, created_at, updated_at`

const createUserSQL = `
INSERT INTO users (email, username, password_hash)
VALUES ($1, $2, $3)
RETURNING ` + userColumns

const getUserByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getUserByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

// Create inserts a new user and returns the persisted row.
// Returns domain.ErrAlreadyExists if the email or username is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(querier.QueryRow(ctx, createUserSQL, u.Email, u.Username, u.PasswordHash))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	return created, nil
}

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if no such user exists.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getUserByIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// GetByEmail returns a user by email.
// Returns domain.ErrNotFound if no such user exists.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return u, nil
}

// scanUser scans one row from any query selecting userColumns.
func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User

	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
