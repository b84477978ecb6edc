package osmocard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// ListResult is one page of cards plus the total match count.
type ListResult struct {
	Items []domain.OsmoCard
	Total int
	Page  int
	Size  int
}

type cardPage struct {
	Items []domain.OsmoCard
	Total int
}

// List returns one page of cards, newest first. Cached per filter.
func (s *Service) List(ctx context.Context, f domain.ListFilter) (*ListResult, error) {
	f.Normalize()

	key := cache.Key(f.Page, f.Size, f.Status)
	page, err := cache.Through(s.cache, listGroup, key, func() (cardPage, error) {
		items, total, err := s.repo.List(ctx, f)
		if err != nil {
			return cardPage{}, fmt.Errorf("list cards: %w", err)
		}
		return cardPage{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{Items: page.Items, Total: page.Total, Page: f.Page, Size: f.Size}, nil
}

// GetByID returns a card by id, whatever its status. Cached by id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.OsmoCard, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	c, err := cache.Through(s.cache, itemGroup, cache.Key("id", id), func() (domain.OsmoCard, error) {
		found, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return domain.OsmoCard{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}
