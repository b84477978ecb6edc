package joystick

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// Update replaces the button, type and behavior ref of a binding. The owner
// pair never changes.
func (s *Service) Update(ctx context.Context, input UpdateJoystickInput) (*domain.Joystick, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Joystick
	err := s.txm.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, input.ID)
		if err != nil {
			return err
		}
		if existing.Status == domain.StatusDeleted {
			return fmt.Errorf("joystick %s: %w", input.ID, domain.ErrAlreadyDeleted)
		}

		button := strings.TrimSpace(input.ButtonCode)
		if button != existing.ButtonCode {
			if err := s.checkTriggerFree(ctx, existing.AccountID, existing.RobotID, button, existing.ID); err != nil {
				return err
			}
		}
		if err := input.Ref.Validate(); err != nil {
			return err
		}

		existing.ButtonCode = button
		existing.Type = strings.TrimSpace(input.Type)
		existing.Ref = input.Ref

		updated, err = s.repo.Update(ctx, existing)
		if err != nil {
			return fmt.Errorf("update joystick: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Evict(listGroup, cache.Key(updated.AccountID, updated.RobotID))

	s.log.InfoContext(ctx, "joystick updated", slog.String("id", updated.ID.String()))

	return updated, nil
}
