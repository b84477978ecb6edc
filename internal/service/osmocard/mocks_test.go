package osmocard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

type cardRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.OsmoCard, error)
	ListFunc    func(ctx context.Context, f domain.ListFilter) ([]domain.OsmoCard, int, error)
	CreateFunc  func(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error)
	UpdateFunc  func(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error)

	mu    sync.Mutex
	calls struct {
		GetByID []uuid.UUID
		List    []domain.ListFilter
		Create  []*domain.OsmoCard
		Update  []*domain.OsmoCard
	}
}

func (m *cardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.OsmoCard, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *cardRepoMock) List(ctx context.Context, f domain.ListFilter) ([]domain.OsmoCard, int, error) {
	m.mu.Lock()
	m.calls.List = append(m.calls.List, f)
	m.mu.Unlock()
	return m.ListFunc(ctx, f)
}

func (m *cardRepoMock) Create(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, c)
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *cardRepoMock) Update(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error) {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, c)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, c)
}

func (m *cardRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *cardRepoMock) ListCalls() []domain.ListFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}

func (m *cardRepoMock) CreateCalls() []*domain.OsmoCard {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *cardRepoMock) UpdateCalls() []*domain.OsmoCard {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}
