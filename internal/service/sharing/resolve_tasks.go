package sharing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/domain"
)

// ResolveTasks expands the authenticated user's grants (own or received,
// per withMe) into the concrete task set they cover, deduplicated. Each
// grant is resolved against the rows of its owner, not the caller: a
// received project grant yields the grantor's tasks in that project.
// Dangling grants whose target entity no longer exists resolve to nothing.
func (s *Service) ResolveTasks(ctx context.Context, withMe bool) ([]*domain.Task, error) {
	grants, err := s.ListGrants(ctx, withMe)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	resolved := []*domain.Task{}

	for _, grant := range grants {
		tasks, err := s.resolveGrant(ctx, grant)
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			if seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			resolved = append(resolved, t)
		}
	}

	return resolved, nil
}

// resolveGrant expands one grant by its content type, reading the grant
// owner's rows.
func (s *Service) resolveGrant(ctx context.Context, grant *domain.Shared) ([]*domain.Task, error) {
	switch grant.ContentType {
	case domain.ContentTypeProject:
		tasks, err := s.tasks.ListByProject(ctx, grant.UserID, grant.ObjectID)
		if err != nil {
			return nil, fmt.Errorf("resolve project grant %s: %w", grant.ID, err)
		}
		return tasks, nil

	case domain.ContentTypeTask:
		task, err := s.tasks.Get(ctx, grant.UserID, grant.ObjectID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, nil // dangling grant
			}
			return nil, fmt.Errorf("resolve task grant %s: %w", grant.ID, err)
		}
		return []*domain.Task{task}, nil

	case domain.ContentTypeTag:
		tasks, err := s.tasks.ListByTag(ctx, grant.UserID, grant.ObjectID)
		if err != nil {
			return nil, fmt.Errorf("resolve tag grant %s: %w", grant.ID, err)
		}
		return tasks, nil

	default:
		// Unknown content types in storage are skipped, not fatal.
		return nil, nil
	}
}
