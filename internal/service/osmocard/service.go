// Package osmocard implements printed card bindings: scanning a card
// triggers exactly one behavior. Cards are global, with no owning account.
package osmocard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

type cardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.OsmoCard, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.OsmoCard, int, error)
	Create(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error)
	Update(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error)
}

type cacheStore interface {
	Get(group, key string) (any, bool)
	Put(group, key string, v any)
	Evict(group, key string)
	Invalidate(group string)
}

const (
	listGroup = "osmo_cards_list"
	itemGroup = "osmo_cards"
)

// Service provides card binding operations.
type Service struct {
	repo  cardRepo
	cache cacheStore
	log   *slog.Logger
}

// NewService creates a new card service.
func NewService(log *slog.Logger, repo cardRepo, cache cacheStore) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With("service", "osmocard"),
	}
}

func (s *Service) invalidate() {
	s.cache.Invalidate(listGroup)
	s.cache.Invalidate(itemGroup)
}
