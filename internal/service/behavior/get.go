package behavior

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// GetByID returns a behavior by id, whatever its status. Cached by id.
func (s *Service) GetByID(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	b, err := cache.Through(s.cache, itemGroup(kind), cache.Key("id", id), func() (domain.Behavior, error) {
		found, err := s.repo.GetByID(ctx, kind, id)
		if err != nil {
			return domain.Behavior{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}

	return s.enrichOne(ctx, b), nil
}

// GetByName returns the active behavior with the given name. The match is
// case-insensitive and excludes soft-deleted records. Cached by name.
func (s *Service) GetByName(ctx context.Context, kind domain.BehaviorKind, name string) (*domain.Behavior, error) {
	return s.getByText(ctx, kind, "name", name, s.repo.GetByName)
}

// GetByCode returns the active behavior with the given code. The match is
// case-insensitive and excludes soft-deleted records. Cached by code.
func (s *Service) GetByCode(ctx context.Context, kind domain.BehaviorKind, code string) (*domain.Behavior, error) {
	return s.getByText(ctx, kind, "code", code, s.repo.GetByCode)
}

func (s *Service) getByText(
	ctx context.Context,
	kind domain.BehaviorKind,
	field, value string,
	fetch func(ctx context.Context, kind domain.BehaviorKind, value string) (*domain.Behavior, error),
) (*domain.Behavior, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, domain.NewValidationError(field, "required")
	}

	key := cache.Key(field, strings.ToLower(value))
	b, err := cache.Through(s.cache, itemGroup(kind), key, func() (domain.Behavior, error) {
		found, err := fetch(ctx, kind, value)
		if err != nil {
			return domain.Behavior{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}

	return s.enrichOne(ctx, b), nil
}
