// Package project implements the Project repository using PostgreSQL.
// Every accessor takes the owner's userID so ownership filtering happens in
// SQL: a foreign or unknown id is indistinguishable from a missing row.
package project

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mpetrenko/tasktrail/internal/adapter/postgres"
	"github.com/mpetrenko/tasktrail/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const projectColumns = `id, user_id, title, description, deadline_date, deadline_time, created_at, updated_at`

const getProjectSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1 AND user_id = $2`

const listProjectsSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE user_id = $1
ORDER BY created_at, id`

const createProjectSQL = `
INSERT INTO projects (user_id, title, description, deadline_date, deadline_time)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + projectColumns

const deleteProjectSQL = `
DELETE FROM projects
WHERE id = $1 AND user_id = $2`

// Get returns a project by primary key with user_id filter.
// Returns domain.ErrNotFound if the project does not exist or belongs to
// another user.
func (r *Repo) Get(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(querier.QueryRow(ctx, getProjectSQL, projectID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "project", projectID)
	}

	return p, nil
}

// List returns all projects owned by the user ordered by creation time.
// Returns an empty slice (not nil) when the user has no projects.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listProjectsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// Create inserts a new project and returns the persisted row.
// Returns domain.ErrAlreadyExists if the user already has a project with the
// same title.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, project *domain.Project) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createProjectSQL,
		userID, project.Title, project.Description, project.DeadlineDate, project.DeadlineTime)

	p, err := scanProject(row)
	if err != nil {
		return nil, postgres.MapError(err, "project", uuid.Nil)
	}

	return p, nil
}

// Update applies a partial update and returns the updated row.
// Pointer-to-zero-value clears a nullable column.
// Returns domain.ErrNotFound if the project does not exist or belongs to
// another user.
func (r *Repo) Update(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	update := psql.Update("projects").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": projectID, "user_id": userID}).
		Suffix("RETURNING " + projectColumns)

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", emptyToNull(*params.Description))
	}
	if params.DeadlineDate != nil {
		if params.DeadlineDate.IsZero() {
			update = update.Set("deadline_date", nil)
		} else {
			update = update.Set("deadline_date", *params.DeadlineDate)
		}
	}
	if params.DeadlineTime != nil {
		update = update.Set("deadline_time", emptyToNull(*params.DeadlineTime))
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", projectID)
	}

	return p, nil
}

// Delete removes a project. Tasks referencing it are removed by CASCADE.
// Returns domain.ErrNotFound if the project does not exist or belongs to
// another user.
func (r *Repo) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteProjectSQL, projectID, userID)
	if err != nil {
		return postgres.MapError(err, "project", projectID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	return nil
}

// scanProject scans one row from any query selecting projectColumns.
func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p            domain.Project
		description  pgtype.Text
		deadlineDate pgtype.Date
		deadlineTime pgtype.Text
	)

	err := row.Scan(&p.ID, &p.UserID, &p.Title, &description, &deadlineDate, &deadlineTime,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		p.Description = &description.String
	}
	if deadlineDate.Valid {
		d := deadlineDate.Time
		p.DeadlineDate = &d
	}
	if deadlineTime.Valid {
		p.DeadlineTime = &deadlineTime.String
	}

	return &p, nil
}

// emptyToNull maps "" to SQL NULL for clearable text columns.
func emptyToNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}
