package joystick

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

// Delete soft-deletes a binding, freeing its trigger key for reuse.
// Deleting an already deleted binding fails with ErrAlreadyDeleted.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status == domain.StatusDeleted {
		return fmt.Errorf("joystick %s: %w", id, domain.ErrAlreadyDeleted)
	}

	existing.Status = domain.StatusDeleted
	if _, err := s.repo.Update(ctx, existing); err != nil {
		return fmt.Errorf("delete joystick: %w", err)
	}

	s.cache.Invalidate(listGroup)

	s.log.InfoContext(ctx, "joystick deleted", slog.String("id", id.String()))

	return nil
}
