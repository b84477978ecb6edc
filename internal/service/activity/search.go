package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// SearchResult is one page of activities plus the total match count.
type SearchResult struct {
	Items []domain.Activity
	Total int
	Page  int
	Size  int
}

type activityPage struct {
	Items []domain.Activity
	Total int
}

// Search returns one page of activities matching the filter. The keyword
// matches name or description. Cached per filter.
func (s *Service) Search(ctx context.Context, f domain.ActivityFilter) (*SearchResult, error) {
	f.Normalize()

	key := cache.Key(f.Page, f.Size, f.Keyword, f.AccountID, f.RobotModelID, f.Status)
	page, err := cache.Through(s.cache, listGroup, key, func() (activityPage, error) {
		items, total, err := s.repo.Search(ctx, f)
		if err != nil {
			return activityPage{}, fmt.Errorf("search activities: %w", err)
		}
		return activityPage{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, err
	}

	return &SearchResult{Items: page.Items, Total: page.Total, Page: f.Page, Size: f.Size}, nil
}

// GetByID returns an activity by id, whatever its status. Cached by id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	a, err := cache.Through(s.cache, itemGroup, cache.Key("id", id), func() (domain.Activity, error) {
		found, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return domain.Activity{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}
