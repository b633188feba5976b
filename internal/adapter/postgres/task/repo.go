// Package task implements the Task repository using PostgreSQL.
// Tasks carry a tag set via the task_tags join table; read methods return
// tasks with TagIDs populated, and Create/Update maintain the links. Write
// methods that touch both tables must run inside a transaction started by the
// caller.
package task

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

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const taskColumns = `id, user_id, parent_id, project_id, title, description,
deadline_date, deadline_time, completed, occurrence_minutes, last_occurrence,
priority, reminder_minutes, created_at, updated_at`

const getTaskSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = $1 AND user_id = $2`

const listTasksSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE user_id = $1
ORDER BY created_at, id`

const listTasksByProjectSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE user_id = $1 AND project_id = $2
ORDER BY created_at, id`

const listTasksByTagSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE user_id = $1
  AND id IN (SELECT task_id FROM task_tags WHERE tag_id = $2)
ORDER BY created_at, id`

const createTaskSQL = `
INSERT INTO tasks (user_id, parent_id, project_id, title, description,
    deadline_date, deadline_time, completed, occurrence_minutes,
    last_occurrence, priority, reminder_minutes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + taskColumns

const deleteTaskSQL = `
DELETE FROM tasks
WHERE id = $1 AND user_id = $2`

const tagIDsByTaskSQL = `
SELECT tt.tag_id
FROM task_tags tt
JOIN tags t ON t.id = tt.tag_id
WHERE tt.task_id = $1
ORDER BY t.title, t.id`

const tagIDsByTasksSQL = `
SELECT tt.task_id, tt.tag_id
FROM task_tags tt
JOIN tags t ON t.id = tt.tag_id
WHERE tt.task_id = ANY($1::uuid[])
ORDER BY t.title, t.id`

const linkTagsSQL = `
INSERT INTO task_tags (task_id, tag_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

const unlinkAllTagsSQL = `
DELETE FROM task_tags
WHERE task_id = $1`

// Get returns a task with its tag set, filtered by owner.
// Returns domain.ErrNotFound if the task does not exist or belongs to another
// user.
func (r *Repo) Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(querier.QueryRow(ctx, getTaskSQL, taskID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}

	if err := r.loadTags(ctx, querier, t); err != nil {
		return nil, fmt.Errorf("task %s: %w", taskID, err)
	}

	return t, nil
}

// List returns all tasks owned by the user with tag sets populated.
// Returns an empty slice (not nil) when the user has no tasks.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	return r.list(ctx, listTasksSQL, userID)
}

// ListByProject returns the owner's tasks attached to the given project.
// The owner here is whoever owns the rows being read, which for shared access
// is the grantor, not the caller.
func (r *Repo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.Task, error) {
	return r.list(ctx, listTasksByProjectSQL, ownerID, projectID)
}

// ListByTag returns the owner's tasks carrying the given tag.
func (r *Repo) ListByTag(ctx context.Context, ownerID, tagID uuid.UUID) ([]*domain.Task, error) {
	return r.list(ctx, listTasksByTagSQL, ownerID, tagID)
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	if err := r.loadTagsBatch(ctx, querier, tasks); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// Create inserts a new task and links its tags. Call inside a transaction
// when task.TagIDs is non-empty so the insert and the links commit together.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, task *domain.Task) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createTaskSQL,
		userID, task.ParentID, task.ProjectID, task.Title, task.Description,
		task.DeadlineDate, task.DeadlineTime, task.Completed, task.OccurrenceMinutes,
		task.LastOccurrence, task.Priority, task.ReminderMinutes)

	t, err := scanTask(row)
	if err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}

	if len(task.TagIDs) > 0 {
		if _, err := querier.Exec(ctx, linkTagsSQL, t.ID, task.TagIDs); err != nil {
			return nil, postgres.MapError(err, "task_tag", t.ID)
		}
	}

	if err := r.loadTags(ctx, querier, t); err != nil {
		return nil, fmt.Errorf("task %s: %w", t.ID, err)
	}

	return t, nil
}

// Update applies a partial update and returns the updated row with tags.
// A non-nil params.TagIDs replaces the whole tag set; call inside a
// transaction in that case.
// Returns domain.ErrNotFound if the task does not exist or belongs to another
// user.
func (r *Repo) Update(ctx context.Context, userID, taskID uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("tasks").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": taskID, "user_id": userID}).
		Suffix("RETURNING " + taskColumns)

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
	if params.Completed != nil {
		update = update.Set("completed", *params.Completed)
	}
	if params.OccurrenceMinutes != nil {
		update = update.Set("occurrence_minutes", *params.OccurrenceMinutes)
	}
	if params.LastOccurrence != nil {
		update = update.Set("last_occurrence", *params.LastOccurrence)
	}
	if params.Priority != nil {
		update = update.Set("priority", *params.Priority)
	}
	if params.ReminderMinutes != nil {
		update = update.Set("reminder_minutes", *params.ReminderMinutes)
	}
	switch {
	case params.ClearParent:
		update = update.Set("parent_id", nil)
	case params.ParentID != nil:
		update = update.Set("parent_id", *params.ParentID)
	}
	switch {
	case params.ClearProject:
		update = update.Set("project_id", nil)
	case params.ProjectID != nil:
		update = update.Set("project_id", *params.ProjectID)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	t, err := scanTask(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}

	if params.TagIDs != nil {
		if _, err := querier.Exec(ctx, unlinkAllTagsSQL, taskID); err != nil {
			return nil, postgres.MapError(err, "task_tag", taskID)
		}
		if len(params.TagIDs) > 0 {
			if _, err := querier.Exec(ctx, linkTagsSQL, taskID, params.TagIDs); err != nil {
				return nil, postgres.MapError(err, "task_tag", taskID)
			}
		}
	}

	if err := r.loadTags(ctx, querier, t); err != nil {
		return nil, fmt.Errorf("task %s: %w", taskID, err)
	}

	return t, nil
}

// Delete removes a task. Subtasks and tag links are removed by CASCADE.
// Returns domain.ErrNotFound if the task does not exist or belongs to another
// user.
func (r *Repo) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteTaskSQL, taskID, userID)
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	return nil
}

// loadTags fills t.TagIDs from the join table.
func (r *Repo) loadTags(ctx context.Context, querier postgres.Querier, t *domain.Task) error {
	rows, err := querier.Query(ctx, tagIDsByTaskSQL, t.ID)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load tags: %w", err)
	}

	t.TagIDs = ids
	return nil
}

// loadTagsBatch fills TagIDs for many tasks with a single join-table query.
func (r *Repo) loadTagsBatch(ctx context.Context, querier postgres.Querier, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	taskIDs := make([]uuid.UUID, len(tasks))
	byID := make(map[uuid.UUID]*domain.Task, len(tasks))
	for i, t := range tasks {
		taskIDs[i] = t.ID
		byID[t.ID] = t
		t.TagIDs = []uuid.UUID{}
	}

	rows, err := querier.Query(ctx, tagIDsByTasksSQL, taskIDs)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, tagID uuid.UUID
		if err := rows.Scan(&taskID, &tagID); err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		if t, ok := byID[taskID]; ok {
			t.TagIDs = append(t.TagIDs, tagID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load tags: %w", err)
	}

	return nil
}

// scanTask scans one row from any query selecting taskColumns.
// TagIDs is NOT populated here.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t                 domain.Task
		parentID          *uuid.UUID
		projectID         *uuid.UUID
		description       pgtype.Text
		deadlineDate      pgtype.Date
		deadlineTime      pgtype.Text
		occurrenceMinutes pgtype.Int4
		lastOccurrence    pgtype.Timestamptz
		reminderMinutes   pgtype.Int4
	)

	err := row.Scan(&t.ID, &t.UserID, &parentID, &projectID, &t.Title, &description,
		&deadlineDate, &deadlineTime, &t.Completed, &occurrenceMinutes, &lastOccurrence,
		&t.Priority, &reminderMinutes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	t.ParentID = parentID
	t.ProjectID = projectID

	if description.Valid {
		t.Description = &description.String
	}
	if deadlineDate.Valid {
		d := deadlineDate.Time
		t.DeadlineDate = &d
	}
	if deadlineTime.Valid {
		t.DeadlineTime = &deadlineTime.String
	}
	if occurrenceMinutes.Valid {
		m := int(occurrenceMinutes.Int32)
		t.OccurrenceMinutes = &m
	}
	if lastOccurrence.Valid {
		ts := lastOccurrence.Time
		t.LastOccurrence = &ts
	}
	if reminderMinutes.Valid {
		m := int(reminderMinutes.Int32)
		t.ReminderMinutes = &m
	}

	return &t, nil
}

// emptyToNull maps "" to SQL NULL for clearable text columns.
func emptyToNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}
