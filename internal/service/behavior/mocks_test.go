package behavior

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

// Hand-written mocks in the moq style: a Func field per method plus
// recorded calls behind a mutex.

type behaviorRepoMock struct {
	SearchFunc    func(ctx context.Context, kind domain.BehaviorKind, f domain.BehaviorFilter) ([]domain.Behavior, int, error)
	GetByIDFunc   func(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error)
	GetByNameFunc func(ctx context.Context, kind domain.BehaviorKind, name string) (*domain.Behavior, error)
	GetByCodeFunc func(ctx context.Context, kind domain.BehaviorKind, code string) (*domain.Behavior, error)
	CreateFunc    func(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error)
	UpdateFunc    func(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error)

	mu    sync.Mutex
	calls struct {
		Search    []domain.BehaviorFilter
		GetByID   []uuid.UUID
		GetByName []string
		GetByCode []string
		Create    []*domain.Behavior
		Update    []*domain.Behavior
	}
}

func (m *behaviorRepoMock) Search(ctx context.Context, kind domain.BehaviorKind, f domain.BehaviorFilter) ([]domain.Behavior, int, error) {
	m.mu.Lock()
	m.calls.Search = append(m.calls.Search, f)
	m.mu.Unlock()
	return m.SearchFunc(ctx, kind, f)
}

func (m *behaviorRepoMock) GetByID(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, kind, id)
}

func (m *behaviorRepoMock) GetByName(ctx context.Context, kind domain.BehaviorKind, name string) (*domain.Behavior, error) {
	m.mu.Lock()
	m.calls.GetByName = append(m.calls.GetByName, name)
	m.mu.Unlock()
	return m.GetByNameFunc(ctx, kind, name)
}

func (m *behaviorRepoMock) GetByCode(ctx context.Context, kind domain.BehaviorKind, code string) (*domain.Behavior, error) {
	m.mu.Lock()
	m.calls.GetByCode = append(m.calls.GetByCode, code)
	m.mu.Unlock()
	return m.GetByCodeFunc(ctx, kind, code)
}

func (m *behaviorRepoMock) Create(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, b)
	m.mu.Unlock()
	return m.CreateFunc(ctx, kind, b)
}

func (m *behaviorRepoMock) Update(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error) {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, b)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, kind, b)
}

func (m *behaviorRepoMock) SearchCalls() []domain.BehaviorFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Search
}

func (m *behaviorRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *behaviorRepoMock) GetByNameCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByName
}

func (m *behaviorRepoMock) GetByCodeCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByCode
}

func (m *behaviorRepoMock) CreateCalls() []*domain.Behavior {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *behaviorRepoMock) UpdateCalls() []*domain.Behavior {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

type robotCatalogMock struct {
	ResolveModelsFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)

	mu    sync.Mutex
	calls [][]uuid.UUID
}

func (m *robotCatalogMock) ResolveModels(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ids)
	m.mu.Unlock()
	return m.ResolveModelsFunc(ctx, ids)
}

func (m *robotCatalogMock) ResolveModelsCalls() [][]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
