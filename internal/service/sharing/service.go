// Package sharing implements grant management and sharing resolution.
// A grant exposes one of the grantor's entities to another user; resolution
// expands grants into the concrete task set they cover, reading the rows of
// the grant's owner rather than the caller's.
package sharing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

type sharedRepo interface {
	Create(ctx context.Context, userID uuid.UUID, grant *domain.Shared) (*domain.Shared, error)
	Get(ctx context.Context, userID, sharedID uuid.UUID) (*domain.Shared, error)
	Update(ctx context.Context, userID, sharedID uuid.UUID, params domain.SharedUpdateParams) (*domain.Shared, error)
	Delete(ctx context.Context, userID, sharedID uuid.UUID) error
	ListByGrantor(ctx context.Context, userID uuid.UUID) ([]*domain.Shared, error)
	ListByRecipient(ctx context.Context, userID uuid.UUID) ([]*domain.Shared, error)
}

type taskRepo interface {
	Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.Task, error)
	ListByTag(ctx context.Context, ownerID, tagID uuid.UUID) ([]*domain.Task, error)
}

type projectRepo interface {
	Get(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
}

type tagRepo interface {
	Get(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type changeLogger interface {
	Append(ctx context.Context, userID uuid.UUID, action domain.Action, contentType domain.ContentType, objectID string) (*domain.Change, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides grant management and sharing resolution.
type Service struct {
	shares   sharedRepo
	tasks    taskRepo
	projects projectRepo
	tags     tagRepo
	users    userRepo
	changes  changeLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Sharing service.
func NewService(
	log *slog.Logger,
	shares sharedRepo,
	tasks taskRepo,
	projects projectRepo,
	tags tagRepo,
	users userRepo,
	changes changeLogger,
	tx txManager,
) *Service {
	return &Service{
		shares:   shares,
		tasks:    tasks,
		projects: projects,
		tags:     tags,
		users:    users,
		changes:  changes,
		tx:       tx,
		log:      log.With("service", "sharing"),
	}
}

// checkTarget verifies the shared entity exists and is owned by the grantor.
// A foreign or missing target fails with domain.ErrNotFound.
func (s *Service) checkTarget(ctx context.Context, userID uuid.UUID, contentType domain.ContentType, objectID uuid.UUID) error {
	var err error
	switch contentType {
	case domain.ContentTypeProject:
		_, err = s.projects.Get(ctx, userID, objectID)
	case domain.ContentTypeTask:
		_, err = s.tasks.Get(ctx, userID, objectID)
	case domain.ContentTypeTag:
		_, err = s.tags.Get(ctx, userID, objectID)
	default:
		return domain.NewValidationError("content_type", "not shareable")
	}
	if err != nil {
		return fmt.Errorf("check share target: %w", err)
	}
	return nil
}

// checkGrantee verifies the recipient user exists and is not the grantor.
func (s *Service) checkGrantee(ctx context.Context, userID, sharedWith uuid.UUID) error {
	if sharedWith == userID {
		return domain.NewValidationError("shared_with", "cannot share with yourself")
	}
	if _, err := s.users.GetByID(ctx, sharedWith); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("grantee %s: %w", sharedWith, domain.ErrNotFound)
		}
		return fmt.Errorf("check grantee: %w", err)
	}
	return nil
}
