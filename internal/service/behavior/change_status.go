package behavior

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// ChangeStatus moves a record to the given non-deleted status. Transitions
// to deleted go through Delete so the already-deleted rule applies there.
func (s *Service) ChangeStatus(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID, status int) (*domain.Behavior, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if status == domain.StatusDeleted {
		return nil, domain.NewValidationError("status", "use delete to remove a record")
	}
	if status < 0 {
		return nil, domain.NewValidationError("status", "must not be negative")
	}

	existing, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.StatusDeleted {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrAlreadyDeleted)
	}

	existing.Status = status

	updated, err := s.repo.Update(ctx, kind, existing)
	if err != nil {
		return nil, fmt.Errorf("change %s status: %w", kind, err)
	}

	s.invalidateKind(kind)
	s.cache.Put(itemGroup(kind), cache.Key("id", updated.ID), *updated)

	s.log.InfoContext(ctx, "behavior status changed",
		slog.String("kind", string(kind)),
		slog.String("id", id.String()),
		slog.Int("status", status),
	)

	return s.enrichOne(ctx, *updated), nil
}
