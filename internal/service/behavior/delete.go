package behavior

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

// Delete soft-deletes a behavior record. Deleting an already deleted record
// fails with ErrAlreadyDeleted; the row is never removed physically.
func (s *Service) Delete(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) error {
	if err := validateKind(kind); err != nil {
		return err
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	existing, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	if existing.Status == domain.StatusDeleted {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrAlreadyDeleted)
	}

	existing.Status = domain.StatusDeleted
	if _, err := s.repo.Update(ctx, kind, existing); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}

	s.invalidateKind(kind)

	s.log.InfoContext(ctx, "behavior deleted",
		slog.String("kind", string(kind)),
		slog.String("id", id.String()),
	)

	return nil
}
