package behavior

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// Patch overlays the non-nil params onto the stored record and persists the
// result. Uniqueness checks run only for fields the patch actually changes.
func (s *Service) Patch(ctx context.Context, kind domain.BehaviorKind, input PatchBehaviorInput) (*domain.Behavior, error) {
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

	p := input.Params

	if p.Code != nil {
		code := strings.TrimSpace(*p.Code)
		if !strings.EqualFold(code, existing.Code) {
			if err := s.checkCodeFree(ctx, kind, code); err != nil {
				return nil, err
			}
		}
		existing.Code = code
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if !strings.EqualFold(name, existing.Name) {
			if err := s.checkNameFree(ctx, kind, name); err != nil {
				return nil, err
			}
		}
		existing.Name = name
	}
	if p.Description != nil {
		existing.Description = trimOrNil(p.Description)
	}
	if p.Duration != nil {
		existing.Duration = *p.Duration
	}
	if p.CanInterrupt != nil {
		existing.CanInterrupt = *p.CanInterrupt
	}
	if p.Icon != nil {
		existing.Icon = trimOrNil(p.Icon)
	}
	if p.Type != nil {
		existing.Type = trimOrNil(p.Type)
	}
	if p.Status != nil {
		existing.Status = *p.Status
	}
	if p.RobotModelID != nil {
		existing.RobotModelID = *p.RobotModelID
	}

	updated, err := s.repo.Update(ctx, kind, existing)
	if err != nil {
		return nil, fmt.Errorf("patch %s: %w", kind, err)
	}

	s.invalidateKind(kind)
	s.cache.Put(itemGroup(kind), cache.Key("id", updated.ID), *updated)

	s.log.InfoContext(ctx, "behavior patched",
		slog.String("kind", string(kind)),
		slog.String("id", updated.ID.String()),
	)

	return s.enrichOne(ctx, *updated), nil
}
