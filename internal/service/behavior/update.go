package behavior

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// Update replaces every mutable field of a behavior record. Status is kept
// as is; use ChangeStatus or Delete for lifecycle transitions.
func (s *Service) Update(ctx context.Context, kind domain.BehaviorKind, input UpdateBehaviorInput) (*domain.Behavior, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, kind, input.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.StatusDeleted {
		return nil, fmt.Errorf("%s %s: %w", kind, input.ID, domain.ErrAlreadyDeleted)
	}

	name := strings.TrimSpace(input.Name)
	code := strings.TrimSpace(input.Code)

	if !strings.EqualFold(code, existing.Code) {
		if err := s.checkCodeFree(ctx, kind, code); err != nil {
			return nil, err
		}
	}
	if !strings.EqualFold(name, existing.Name) {
		if err := s.checkNameFree(ctx, kind, name); err != nil {
			return nil, err
		}
	}

	existing.Name = name
	existing.Code = code
	existing.Description = trimOrNil(input.Description)
	existing.Duration = input.Duration
	existing.CanInterrupt = input.CanInterrupt
	existing.Icon = trimOrNil(input.Icon)
	existing.Type = trimOrNil(input.Type)
	existing.RobotModelID = input.RobotModelID

	updated, err := s.repo.Update(ctx, kind, existing)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", kind, err)
	}

	s.invalidateKind(kind)
	s.cache.Put(itemGroup(kind), cache.Key("id", updated.ID), *updated)

	s.log.InfoContext(ctx, "behavior updated",
		slog.String("kind", string(kind)),
		slog.String("id", updated.ID.String()),
	)

	return s.enrichOne(ctx, *updated), nil
}
