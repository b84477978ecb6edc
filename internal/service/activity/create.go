package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// Create stores a new activity. The payload is persisted verbatim.
func (s *Service) Create(ctx context.Context, input CreateActivityInput) (*domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Activity{
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		Data:         input.Data,
		Type:         strings.TrimSpace(input.Type),
		AccountID:    input.AccountID,
		RobotModelID: input.RobotModelID,
		Status:       domain.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.invalidate()
	s.cache.Put(itemGroup, cache.Key("id", created.ID), *created)

	s.log.InfoContext(ctx, "activity created",
		slog.String("id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// Delete soft-deletes an activity. Deleting an already deleted activity
// fails with ErrAlreadyDeleted. Codes pointing at it keep their rows; the
// resolution pipeline reports them as dangling.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status == domain.StatusDeleted {
		return fmt.Errorf("activity %s: %w", id, domain.ErrAlreadyDeleted)
	}

	existing.Status = domain.StatusDeleted
	if _, err := s.repo.Update(ctx, existing); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.invalidate()

	s.log.InfoContext(ctx, "activity deleted", slog.String("id", id.String()))

	return nil
}
