// Package project implements project management: owner-scoped CRUD where
// every mutation appends one row to the change ledger in the same
// transaction.
package project

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

type projectRepo interface {
	Create(ctx context.Context, userID uuid.UUID, project *domain.Project) (*domain.Project, error)
	Get(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	Update(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
}

type changeLogger interface {
	Append(ctx context.Context, userID uuid.UUID, action domain.Action, contentType domain.ContentType, objectID string) (*domain.Change, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides project management operations.
type Service struct {
	projects projectRepo
	changes  changeLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Project service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	changes changeLogger,
	tx txManager,
) *Service {
	return &Service{
		projects: projects,
		changes:  changes,
		tx:       tx,
		log:      log.With("service", "project"),
	}
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
