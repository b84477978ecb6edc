package osmocard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// Update replaces the name, color and behavior ref of a card.
func (s *Service) Update(ctx context.Context, input UpdateCardInput) (*domain.OsmoCard, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.StatusDeleted {
		return nil, fmt.Errorf("card %s: %w", input.ID, domain.ErrAlreadyDeleted)
	}

	if err := input.Ref.Validate(); err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Color = strings.TrimSpace(input.Color)
	existing.Ref = input.Ref

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}

	s.invalidate()
	s.cache.Put(itemGroup, cache.Key("id", updated.ID), *updated)

	s.log.InfoContext(ctx, "card updated", slog.String("id", updated.ID.String()))

	return updated, nil
}

// Patch overlays the provided fields onto the stored card. The merged ref
// follows the same replace-wholesale rule as every binding owner: one new
// slot clears the previous one.
func (s *Service) Patch(ctx context.Context, input PatchCardInput) (*domain.OsmoCard, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.StatusDeleted {
		return nil, fmt.Errorf("card %s: %w", input.ID, domain.ErrAlreadyDeleted)
	}

	if input.Params.Name != nil {
		existing.Name = strings.TrimSpace(*input.Params.Name)
	}
	if input.Params.Color != nil {
		existing.Color = strings.TrimSpace(*input.Params.Color)
	}

	merged := existing.Ref.Merge(input.Params.Ref)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	existing.Ref = merged

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("patch card: %w", err)
	}

	s.invalidate()
	s.cache.Put(itemGroup, cache.Key("id", updated.ID), *updated)

	s.log.InfoContext(ctx, "card patched", slog.String("id", updated.ID.String()))

	return updated, nil
}
