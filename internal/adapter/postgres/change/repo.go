// Package change implements the append-only change ledger using PostgreSQL.
//
// Every row gets a per-user sequence number (change_id) that is gapless and
// strictly increasing, starting at 1. The number is computed as MAX+1 under a
// per-user advisory lock taken inside the caller's transaction, so two
// concurrent writers for the same user serialize and neither can observe a
// rolled-back number. Writers for different users do not contend.
package change

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mpetrenko/tasktrail/internal/adapter/postgres"
	"github.com/mpetrenko/tasktrail/internal/domain"
)

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new change repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const changeColumns = `id, user_id, change_id, action, content_type, object_id, created_at`

// The advisory lock key is derived from the user's UUID text. xact-scoped
// locks release automatically at commit or rollback.
const lockLedgerSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

const appendChangeSQL = `
INSERT INTO changes (user_id, change_id, action, content_type, object_id)
SELECT $1, COALESCE(MAX(change_id), 0) + 1, $2, $3, $4
FROM changes
WHERE user_id = $1
RETURNING ` + changeColumns

const listChangesSQL = `
SELECT ` + changeColumns + `
FROM changes
WHERE user_id = $1 AND change_id > $2
ORDER BY change_id`

const getByChangeIDSQL = `
SELECT ` + changeColumns + `
FROM changes
WHERE user_id = $1 AND change_id = $2`

const lastChangeIDSQL = `
SELECT COALESCE(MAX(change_id), 0)
FROM changes
WHERE user_id = $1`

// Append writes one ledger row and returns it with the assigned change_id.
// MUST be called inside a transaction (TxManager.RunInTx): the advisory lock
// is transaction-scoped, and the row has to commit or roll back together with
// the entity mutation it records.
func (r *Repo) Append(ctx context.Context, userID uuid.UUID, action domain.Action, contentType domain.ContentType, objectID string) (*domain.Change, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("change append for user %s: no transaction in context", userID)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, lockLedgerSQL, userID); err != nil {
		return nil, fmt.Errorf("lock ledger for user %s: %w", userID, err)
	}

	row := querier.QueryRow(ctx, appendChangeSQL, userID, action.String(), contentType.String(), objectID)

	c, err := scanChange(row)
	if err != nil {
		return nil, postgres.MapError(err, "change", userID)
	}

	return c, nil
}

// List returns the user's ledger rows with change_id greater than sinceID,
// ordered by change_id ascending. sinceID 0 returns the full ledger.
// Returns an empty slice (not nil) when there is nothing newer.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, sinceID int64) ([]*domain.Change, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listChangesSQL, userID, sinceID)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}
	defer rows.Close()

	changes := []*domain.Change{}
	for rows.Next() {
		c, err := scanChange(rows)
		if err != nil {
			return nil, fmt.Errorf("list changes: %w", err)
		}
		changes = append(changes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}

	return changes, nil
}

// GetByChangeID returns the user's ledger row with the given sequence number.
// Returns domain.ErrNotFound if the user has no such row.
func (r *Repo) GetByChangeID(ctx context.Context, userID uuid.UUID, changeID int64) (*domain.Change, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanChange(querier.QueryRow(ctx, getByChangeIDSQL, userID, changeID))
	if err != nil {
		return nil, postgres.MapError(err, "change", changeID)
	}

	return c, nil
}

// GetLastID returns the user's highest change_id, or 0 for an empty ledger.
func (r *Repo) GetLastID(ctx context.Context, userID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var last int64
	if err := querier.QueryRow(ctx, lastChangeIDSQL, userID).Scan(&last); err != nil {
		return 0, fmt.Errorf("last change_id: %w", err)
	}

	return last, nil
}

// scanChange scans one row from any query selecting changeColumns.
func scanChange(row pgx.Row) (*domain.Change, error) {
	var (
		c           domain.Change
		action      string
		contentType string
	)

	err := row.Scan(&c.ID, &c.UserID, &c.ChangeID, &action, &contentType, &c.ObjectID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	c.Action = domain.Action(action)
	c.ContentType = domain.ContentType(contentType)

	return &c, nil
}
