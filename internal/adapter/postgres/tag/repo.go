// Package tag implements the Tag repository using PostgreSQL.
package tag

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

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const tagColumns = `id, user_id, title, created_at, updated_at`

const getTagSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE id = $1 AND user_id = $2`

const listTagsSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE user_id = $1
ORDER BY title, id`

const createTagSQL = `
INSERT INTO tags (user_id, title)
VALUES ($1, $2)
RETURNING ` + tagColumns

const deleteTagSQL = `
DELETE FROM tags
WHERE id = $1 AND user_id = $2`

// Get returns a tag by primary key with user_id filter.
// Returns domain.ErrNotFound if the tag does not exist or belongs to another
// user.
func (r *Repo) Get(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTag(querier.QueryRow(ctx, getTagSQL, tagID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "tag", tagID)
	}

	return t, nil
}

// List returns all tags owned by the user ordered by title.
// Returns an empty slice (not nil) when the user has no tags.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listTagsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := []*domain.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}

// Create inserts a new tag and returns the persisted row.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tag *domain.Tag) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTag(querier.QueryRow(ctx, createTagSQL, userID, tag.Title))
	if err != nil {
		return nil, postgres.MapError(err, "tag", uuid.Nil)
	}

	return t, nil
}

// Update applies a partial update and returns the updated row.
// Returns domain.ErrNotFound if the tag does not exist or belongs to another
// user.
func (r *Repo) Update(ctx context.Context, userID, tagID uuid.UUID, params domain.TagUpdateParams) (*domain.Tag, error) {
	update := psql.Update("tags").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": tagID, "user_id": userID}).
		Suffix("RETURNING " + tagColumns)

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTag(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tag", tagID)
	}

	return t, nil
}

// Delete removes a tag. CASCADE detaches it from tasks; tasks are NOT
// affected.
// Returns domain.ErrNotFound if the tag does not exist or belongs to another
// user.
func (r *Repo) Delete(ctx context.Context, userID, tagID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteTagSQL, tagID, userID)
	if err != nil {
		return postgres.MapError(err, "tag", tagID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tag %s: %w", tagID, domain.ErrNotFound)
	}

	return nil
}

// scanTag scans one row from any query selecting tagColumns.
func scanTag(row pgx.Row) (*domain.Tag, error) {
	var t domain.Tag

	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
