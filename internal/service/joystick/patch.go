package joystick

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// Patch overlays the provided fields onto the stored binding. The merged
// ref is validated against the exactly-one invariant: a patch binding a
// new slot replaces the whole ref, a patch binding nothing keeps it.
func (s *Service) Patch(ctx context.Context, input PatchJoystickInput) (*domain.Joystick, error) {
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

		if input.Params.ButtonCode != nil {
			button := strings.TrimSpace(*input.Params.ButtonCode)
			if button != existing.ButtonCode {
				if err := s.checkTriggerFree(ctx, existing.AccountID, existing.RobotID, button, existing.ID); err != nil {
					return err
				}
			}
			existing.ButtonCode = button
		}
		if input.Params.Type != nil {
			existing.Type = strings.TrimSpace(*input.Params.Type)
		}

		merged := existing.Ref.Merge(input.Params.Ref)
		if err := merged.Validate(); err != nil {
			return err
		}
		existing.Ref = merged

		updated, err = s.repo.Update(ctx, existing)
		if err != nil {
			return fmt.Errorf("patch joystick: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Evict(listGroup, cache.Key(updated.AccountID, updated.RobotID))

	s.log.InfoContext(ctx, "joystick patched", slog.String("id", updated.ID.String()))

	return updated, nil
}
