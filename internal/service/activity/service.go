// Package activity implements playable content operations. The payload is
// opaque structured data the robots interpret; this service only stores it.
package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

type activityRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	Search(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, int, error)
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
}

type cacheStore interface {
	Get(group, key string) (any, bool)
	Put(group, key string, v any)
	Evict(group, key string)
	Invalidate(group string)
}

const (
	listGroup = "activities_list"
	itemGroup = "activities"
)

// Service provides activity content operations.
type Service struct {
	repo  activityRepo
	cache cacheStore
	log   *slog.Logger
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, repo activityRepo, cache cacheStore) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With("service", "activity"),
	}
}

func (s *Service) invalidate() {
	s.cache.Invalidate(listGroup)
	s.cache.Invalidate(itemGroup)
}
