// Package task implements task management: owner-scoped CRUD with nesting,
// project attachment, tag sets and change ledger recording. Referenced
// parents, projects and tags are checked against the caller's own rows, so a
// foreign reference fails exactly like a missing one.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

type taskRepo interface {
	Create(ctx context.Context, userID uuid.UUID, task *domain.Task) (*domain.Task, error)
	Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
}

type projectRepo interface {
	Get(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
}

type tagRepo interface {
	Get(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error)
}

type changeLogger interface {
	Append(ctx context.Context, userID uuid.UUID, action domain.Action, contentType domain.ContentType, objectID string) (*domain.Change, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// maxParentDepth bounds the ancestor walk in checkParent. A chain this deep
// only occurs on corrupted data.
const maxParentDepth = 100

// Service provides task management operations.
type Service struct {
	tasks    taskRepo
	projects projectRepo
	tags     tagRepo
	changes  changeLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	projects projectRepo,
	tags tagRepo,
	changes changeLogger,
	tx txManager,
) *Service {
	return &Service{
		tasks:    tasks,
		projects: projects,
		tags:     tags,
		changes:  changes,
		tx:       tx,
		log:      log.With("service", "task"),
	}
}

// checkProject verifies the project exists and is owned by the user.
func (s *Service) checkProject(ctx context.Context, userID, projectID uuid.UUID) error {
	if _, err := s.projects.Get(ctx, userID, projectID); err != nil {
		return fmt.Errorf("check project: %w", err)
	}
	return nil
}

// checkTags verifies every tag exists and is owned by the user.
func (s *Service) checkTags(ctx context.Context, userID uuid.UUID, tagIDs []uuid.UUID) error {
	for _, tagID := range tagIDs {
		if _, err := s.tags.Get(ctx, userID, tagID); err != nil {
			return fmt.Errorf("check tag: %w", err)
		}
	}
	return nil
}

// checkParent verifies the new parent exists, is owned by the user, and that
// attaching taskID under it creates no cycle. taskID is uuid.Nil at create
// time, when no cycle is possible.
func (s *Service) checkParent(ctx context.Context, userID, taskID, parentID uuid.UUID) error {
	current := parentID
	for depth := 0; depth < maxParentDepth; depth++ {
		if taskID != uuid.Nil && current == taskID {
			return domain.NewValidationError("parent_id", "would create a cycle")
		}

		parent, err := s.tasks.Get(ctx, userID, current)
		if err != nil {
			return fmt.Errorf("check parent: %w", err)
		}
		if parent.ParentID == nil {
			return nil
		}
		current = *parent.ParentID
	}

	return domain.NewValidationError("parent_id", "nesting too deep")
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
