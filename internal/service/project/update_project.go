package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mpetrenko/tasktrail/internal/domain"
	"github.com/mpetrenko/tasktrail/pkg/ctxutil"
)

// UpdateProject applies a partial update to one of the authenticated user's
// projects and records it in the change ledger.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ProjectUpdateParams{
		Description: input.Description,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}
	if input.DeadlineDate != nil {
		if *input.DeadlineDate == "" {
			params.DeadlineDate = &time.Time{} // zero value clears
		} else {
			params.DeadlineDate = parseDatePtr(input.DeadlineDate)
		}
	}
	if input.DeadlineTime != nil {
		if *input.DeadlineTime == "" {
			empty := ""
			params.DeadlineTime = &empty
		} else {
			params.DeadlineTime = normalizeTimePtr(input.DeadlineTime)
		}
	}

	var project *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		project, updateErr = s.projects.Update(txCtx, userID, input.ProjectID, params)
		if updateErr != nil {
			return fmt.Errorf("update project: %w", updateErr)
		}

		_, appendErr := s.changes.Append(txCtx, userID, domain.ActionUpdated, domain.ContentTypeProject, project.ID.String())
		if appendErr != nil {
			return fmt.Errorf("append change: %w", appendErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project updated",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
	)

	return project, nil
}
