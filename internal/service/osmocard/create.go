package osmocard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// Create creates a new card binding one behavior.
func (s *Service) Create(ctx context.Context, input CreateCardInput) (*domain.OsmoCard, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := input.Ref.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.OsmoCard{
		Name:   strings.TrimSpace(input.Name),
		Color:  strings.TrimSpace(input.Color),
		Ref:    input.Ref,
		Status: domain.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	s.invalidate()
	s.cache.Put(itemGroup, cache.Key("id", created.ID), *created)

	s.log.InfoContext(ctx, "card created",
		slog.String("id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}
