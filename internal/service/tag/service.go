// Package tag implements tag management: owner-scoped CRUD with change
// ledger recording.
package tag

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

type tagRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tag *domain.Tag) (*domain.Tag, error)
	Get(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error)
	Update(ctx context.Context, userID, tagID uuid.UUID, params domain.TagUpdateParams) (*domain.Tag, error)
	Delete(ctx context.Context, userID, tagID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error)
}

type changeLogger interface {
	Append(ctx context.Context, userID uuid.UUID, action domain.Action, contentType domain.ContentType, objectID string) (*domain.Change, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides tag management operations.
type Service struct {
	tags    tagRepo
	changes changeLogger
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Tag service.
func NewService(
	log *slog.Logger,
	tags tagRepo,
	changes changeLogger,
	tx txManager,
) *Service {
	return &Service{
		tags:    tags,
		changes: changes,
		tx:      tx,
		log:     log.With("service", "tag"),
	}
}
