package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// CreateProject creates a new project for the authenticated user and records
// the creation in the change ledger.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var project *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		project, createErr = s.projects.Create(txCtx, userID, &domain.Project{
			Title:        strings.TrimSpace(input.Title),
			Description:  trimOrNil(input.Description),
			DeadlineDate: parseDatePtr(input.DeadlineDate),
			DeadlineTime: normalizeTimePtr(input.DeadlineTime),
		})
		if createErr != nil {
			return fmt.Errorf("create project: %w", createErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionCreated, domain.ContentTypeProject, project.ID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
	)

	return project, nil
}
