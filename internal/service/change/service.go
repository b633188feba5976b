// Package change exposes the read side of the change ledger: incremental
// listing, checkpointing and materialization. The ledger stores identity, not
// payloads, so materialization loads the referenced entity fresh; a missing
// entity yields null content, never an error.
package change

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

type changeRepo interface {
	List(ctx context.Context, userID uuid.UUID, sinceID int64) ([]*domain.Change, error)
	GetByChangeID(ctx context.Context, userID uuid.UUID, changeID int64) (*domain.Change, error)
	GetLastID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type projectRepo interface {
	Get(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
}

type taskRepo interface {
	Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
}

type tagRepo interface {
	Get(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error)
}

type sharedRepo interface {
	Get(ctx context.Context, userID, sharedID uuid.UUID) (*domain.Shared, error)
}

// Service provides read access to the change ledger.
type Service struct {
	changes  changeRepo
	projects projectRepo
	tasks    taskRepo
	tags     tagRepo
	shares   sharedRepo
	log      *slog.Logger
}

// NewService creates a new Change service.
func NewService(
	log *slog.Logger,
	changes changeRepo,
	projects projectRepo,
	tasks taskRepo,
	tags tagRepo,
	shares sharedRepo,
) *Service {
	return &Service{
		changes:  changes,
		projects: projects,
		tasks:    tasks,
		tags:     tags,
		shares:   shares,
		log:      log.With("service", "change"),
	}
}

// materialize resolves a ledger row to the current state of the entity it
// references. Content stays nil when the entity is gone, which is the normal
// outcome for Deleted rows and for Updated rows replayed after a later
// delete.
func (s *Service) materialize(ctx context.Context, c *domain.Change) (*domain.MaterializedChange, error) {
	m := &domain.MaterializedChange{Change: *c}

	objectID, err := uuid.Parse(c.ObjectID)
	if err != nil {
		// object_id is stored as text; an unparsable one cannot resolve.
		return m, nil
	}

	var content any
	switch c.ContentType {
	case domain.ContentTypeProject:
		content, err = s.projects.Get(ctx, c.UserID, objectID)
	case domain.ContentTypeTask:
		content, err = s.tasks.Get(ctx, c.UserID, objectID)
	case domain.ContentTypeTag:
		content, err = s.tags.Get(ctx, c.UserID, objectID)
	case domain.ContentTypeShared:
		content, err = s.shares.Get(ctx, c.UserID, objectID)
	default:
		return m, nil
	}

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return m, nil
		}
		return nil, fmt.Errorf("materialize change %d: %w", c.ChangeID, err)
	}

	m.Content = content
	return m, nil
}
