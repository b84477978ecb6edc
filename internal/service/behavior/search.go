package behavior

import (
	"context"
	"fmt"
	"slices"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// SearchResult is one page of behaviors plus the total match count.
type SearchResult struct {
	Items []domain.Behavior
	Total int
	Page  int
	Size  int
}

// behaviorPage is what the cache stores for a search: records without
// robot model names, which are resolved per request.
type behaviorPage struct {
	Items []domain.Behavior
	Total int
}

// Search returns one page of behaviors of the given kind. Pages are cached
// per kind and filter; robot model names are enriched after the cache.
func (s *Service) Search(ctx context.Context, kind domain.BehaviorKind, f domain.BehaviorFilter) (*SearchResult, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	f.Normalize()

	key := cache.Key(f.Page, f.Size, f.Name, f.Code, f.Status, f.RobotModelID, f.CanInterrupt, f.Duration)

	page, err := cache.Through(s.cache, listGroup(kind), key, func() (behaviorPage, error) {
		items, total, err := s.repo.Search(ctx, kind, f)
		if err != nil {
			return behaviorPage{}, fmt.Errorf("search %s: %w", kind, err)
		}
		return behaviorPage{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, err
	}

	// Clone before enriching so the cached page never carries names.
	items := slices.Clone(page.Items)
	s.enrich(ctx, items)

	return &SearchResult{
		Items: items,
		Total: page.Total,
		Page:  f.Page,
		Size:  f.Size,
	}, nil
}
