package behavior

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// Create creates a new behavior record. The code is checked for an active
// duplicate first, then the name; either duplicate fails with ErrConflict.
func (s *Service) Create(ctx context.Context, kind domain.BehaviorKind, input CreateBehaviorInput) (*domain.Behavior, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	code := strings.TrimSpace(input.Code)

	if err := s.checkCodeFree(ctx, kind, code); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, kind, name); err != nil {
		return nil, err
	}

	status := domain.StatusActive
	if input.Status != nil {
		status = *input.Status
	}

	created, err := s.repo.Create(ctx, kind, &domain.Behavior{
		Name:         name,
		Code:         code,
		Description:  trimOrNil(input.Description),
		Duration:     input.Duration,
		CanInterrupt: input.CanInterrupt,
		Icon:         trimOrNil(input.Icon),
		Type:         trimOrNil(input.Type),
		RobotModelID: input.RobotModelID,
		Status:       status,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}

	s.invalidateKind(kind)
	s.cache.Put(itemGroup(kind), cache.Key("id", created.ID), *created)

	s.log.InfoContext(ctx, "behavior created",
		slog.String("kind", string(kind)),
		slog.String("id", created.ID.String()),
		slog.String("code", created.Code),
	)

	return s.enrichOne(ctx, *created), nil
}

// checkCodeFree fails with ErrConflict when an active record of the kind
// already holds the code.
func (s *Service) checkCodeFree(ctx context.Context, kind domain.BehaviorKind, code string) error {
	existing, err := s.repo.GetByCode(ctx, kind, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("check code: %w", err)
	}
	return fmt.Errorf("%s code %q already used by %s: %w", kind, code, existing.ID, domain.ErrConflict)
}

// checkNameFree fails with ErrConflict when an active record of the kind
// already holds the name.
func (s *Service) checkNameFree(ctx context.Context, kind domain.BehaviorKind, name string) error {
	existing, err := s.repo.GetByName(ctx, kind, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("check name: %w", err)
	}
	return fmt.Errorf("%s name %q already used by %s: %w", kind, name, existing.ID, domain.ErrConflict)
}
