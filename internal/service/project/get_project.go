package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// GetProject returns one of the authenticated user's projects.
// A foreign or unknown id yields domain.ErrNotFound.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	project, err := s.projects.Get(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	return project, nil
}
