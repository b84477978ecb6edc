// Package behavior implements the content operations shared by the five
// behavior kinds. The kind is a parameter on every operation; one service
// and one repository serve all five tables.
package behavior

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

type behaviorRepo interface {
	Search(ctx context.Context, kind domain.BehaviorKind, f domain.BehaviorFilter) ([]domain.Behavior, int, error)
	GetByID(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error)
	GetByName(ctx context.Context, kind domain.BehaviorKind, name string) (*domain.Behavior, error)
	GetByCode(ctx context.Context, kind domain.BehaviorKind, code string) (*domain.Behavior, error)
	Create(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error)
	Update(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error)
}

type robotCatalog interface {
	ResolveModels(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type cacheStore interface {
	Get(group, key string) (any, bool)
	Put(group, key string, v any)
	Evict(group, key string)
	Invalidate(group string)
}

// UnknownRobotModel is the display name used when the robot catalog cannot
// resolve a model id, for whatever reason.
const UnknownRobotModel = "Unknown"

// Service provides behavior content operations.
type Service struct {
	repo    behaviorRepo
	catalog robotCatalog
	cache   cacheStore
	log     *slog.Logger
}

// NewService creates a new behavior service.
func NewService(log *slog.Logger, repo behaviorRepo, catalog robotCatalog, cache cacheStore) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
		log:     log.With("service", "behavior"),
	}
}

// Cache group naming: "<kind>s_list" holds search pages, "<kind>s" holds
// point lookups by id, name and code. Mutations purge both groups of the
// mutated kind and leave the other kinds alone.
func listGroup(kind domain.BehaviorKind) string { return string(kind) + "s_list" }
func itemGroup(kind domain.BehaviorKind) string { return string(kind) + "s" }

// invalidateKind purges both cache groups of one kind. Called after every
// successful mutation, before the result is returned.
func (s *Service) invalidateKind(kind domain.BehaviorKind) {
	s.cache.Invalidate(listGroup(kind))
	s.cache.Invalidate(itemGroup(kind))
}

// enrich resolves robot model display names for a batch of behaviors.
// Names are request-scoped: cached entries never carry them, so this runs
// on cache hits as well. A failing catalog degrades every name to
// UnknownRobotModel and is logged, never propagated.
func (s *Service) enrich(ctx context.Context, items []domain.Behavior) {
	if len(items) == 0 {
		return
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for i := range items {
		id := items[i].RobotModelID
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	names, err := s.catalog.ResolveModels(ctx, ids)
	if err != nil {
		s.log.WarnContext(ctx, "robot catalog unavailable, using fallback names",
			slog.Int("models", len(ids)),
			slog.String("error", err.Error()),
		)
		names = nil
	}

	for i := range items {
		if name, ok := names[items[i].RobotModelID]; ok && name != "" {
			items[i].RobotModelName = name
		} else {
			items[i].RobotModelName = UnknownRobotModel
		}
	}
}

// enrichOne resolves the robot model name for a single behavior, returning
// a copy so cached records stay unenriched.
func (s *Service) enrichOne(ctx context.Context, b domain.Behavior) *domain.Behavior {
	one := []domain.Behavior{b}
	s.enrich(ctx, one)
	return &one[0]
}

func validateKind(kind domain.BehaviorKind) error {
	if !kind.Valid() {
		return domain.NewValidationError("kind", "unknown behavior kind")
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
