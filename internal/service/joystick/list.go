package joystick

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// ListByOwner returns the active bindings of one (account, robot) pair,
// newest first. Cached per owner pair.
func (s *Service) ListByOwner(ctx context.Context, accountID, robotID uuid.UUID) ([]domain.Joystick, error) {
	if accountID == uuid.Nil {
		return nil, domain.NewValidationError("account_id", "required")
	}
	if robotID == uuid.Nil {
		return nil, domain.NewValidationError("robot_id", "required")
	}

	key := cache.Key(accountID, robotID)
	return cache.Through(s.cache, listGroup, key, func() ([]domain.Joystick, error) {
		items, err := s.repo.ListByOwner(ctx, accountID, robotID)
		if err != nil {
			return nil, fmt.Errorf("list joysticks: %w", err)
		}
		return items, nil
	})
}

// GetByID returns a binding by id, whatever its status.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Joystick, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.repo.GetByID(ctx, id)
}
