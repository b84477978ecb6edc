package joystick

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// Create creates a new button binding. The trigger key must be free among
// active bindings and the ref must bind exactly one behavior, in that order.
func (s *Service) Create(ctx context.Context, input CreateJoystickInput) (*domain.Joystick, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	button := strings.TrimSpace(input.ButtonCode)

	// The duplicate check and the insert share one transaction so a racing
	// create of the same trigger key hits the partial unique index, not a
	// stale read.
	var created *domain.Joystick
	err := s.txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checkTriggerFree(ctx, input.AccountID, input.RobotID, button, uuid.Nil); err != nil {
			return err
		}
		if err := input.Ref.Validate(); err != nil {
			return err
		}

		var err error
		created, err = s.repo.Create(ctx, &domain.Joystick{
			AccountID:  input.AccountID,
			RobotID:    input.RobotID,
			ButtonCode: button,
			Type:       strings.TrimSpace(input.Type),
			Ref:        input.Ref,
			Status:     domain.StatusActive,
		})
		if err != nil {
			return fmt.Errorf("create joystick: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Evict(listGroup, cache.Key(created.AccountID, created.RobotID))

	s.log.InfoContext(ctx, "joystick created",
		slog.String("id", created.ID.String()),
		slog.String("account_id", created.AccountID.String()),
		slog.String("robot_id", created.RobotID.String()),
		slog.String("button_code", created.ButtonCode),
	)

	return created, nil
}
