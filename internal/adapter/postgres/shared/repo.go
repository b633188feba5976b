// Package shared implements the sharing-grant repository using PostgreSQL.
// Grants reference their target loosely (content_type + object_id, no FK), so
// rows survive the target's deletion and readers must tolerate dangling
// references.
package shared

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mpetrenko/tasktrail/internal/adapter/postgres"
	"github.com/mpetrenko/tasktrail/internal/domain"
)

// Repo provides grant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shared repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const sharedColumns = `id, user_id, shared_with, content_type, object_id, created_at, updated_at`

const getSharedSQL = `
SELECT ` + sharedColumns + `
FROM shared
WHERE id = $1 AND user_id = $2`

const listByGrantorSQL = `
SELECT ` + sharedColumns + `
FROM shared
WHERE user_id = $1
ORDER BY created_at, id`

const listByRecipientSQL = `
SELECT ` + sharedColumns + `
FROM shared
WHERE shared_with = $1
ORDER BY created_at, id`

const createSharedSQL = `
INSERT INTO shared (user_id, shared_with, content_type, object_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + sharedColumns

const deleteSharedSQL = `
DELETE FROM shared
WHERE id = $1 AND user_id = $2`

// Get returns a grant by primary key, filtered by grantor.
// Returns domain.ErrNotFound if the grant does not exist or was created by
// another user.
func (r *Repo) Get(ctx context.Context, userID, sharedID uuid.UUID) (*domain.Shared, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanShared(querier.QueryRow(ctx, getSharedSQL, sharedID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "shared", sharedID)
	}

	return s, nil
}

// ListByGrantor returns grants the user created.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByGrantor(ctx context.Context, userID uuid.UUID) ([]*domain.Shared, error) {
	return r.list(ctx, listByGrantorSQL, userID)
}

// ListByRecipient returns grants where the user is the grantee.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByRecipient(ctx context.Context, userID uuid.UUID) ([]*domain.Shared, error) {
	return r.list(ctx, listByRecipientSQL, userID)
}

func (r *Repo) list(ctx context.Context, sql string, userID uuid.UUID) ([]*domain.Shared, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("list shared: %w", err)
	}
	defer rows.Close()

	grants := []*domain.Shared{}
	for rows.Next() {
		s, err := scanShared(rows)
		if err != nil {
			return nil, fmt.Errorf("list shared: %w", err)
		}
		grants = append(grants, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shared: %w", err)
	}

	return grants, nil
}

// Create inserts a new grant and returns the persisted row.
// Returns domain.ErrNotFound if shared_with references no user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, grant *domain.Shared) (*domain.Shared, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSharedSQL,
		userID, grant.SharedWith, grant.ContentType.String(), grant.ObjectID)

	s, err := scanShared(row)
	if err != nil {
		return nil, postgres.MapError(err, "shared", uuid.Nil)
	}

	return s, nil
}

// Update applies a partial update and returns the updated row.
// Returns domain.ErrNotFound if the grant does not exist or was created by
// another user.
func (r *Repo) Update(ctx context.Context, userID, sharedID uuid.UUID, params domain.SharedUpdateParams) (*domain.Shared, error) {
	update := psql.Update("shared").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": sharedID, "user_id": userID}).
		Suffix("RETURNING " + sharedColumns)

	if params.SharedWith != nil {
		update = update.Set("shared_with", *params.SharedWith)
	}
	if params.ContentType != nil {
		update = update.Set("content_type", params.ContentType.String())
	}
	if params.ObjectID != nil {
		update = update.Set("object_id", *params.ObjectID)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanShared(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "shared", sharedID)
	}

	return s, nil
}

// Delete removes a grant.
// Returns domain.ErrNotFound if the grant does not exist or was created by
// another user.
func (r *Repo) Delete(ctx context.Context, userID, sharedID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSharedSQL, sharedID, userID)
	if err != nil {
		return postgres.MapError(err, "shared", sharedID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shared %s: %w", sharedID, domain.ErrNotFound)
	}

	return nil
}

// scanShared scans one row from any query selecting sharedColumns.
func scanShared(row pgx.Row) (*domain.Shared, error) {
	var (
		s           domain.Shared
		contentType string
	)

	err := row.Scan(&s.ID, &s.UserID, &s.SharedWith, &contentType, &s.ObjectID,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	s.ContentType = domain.ContentType(contentType)

	return &s, nil
}
