package activity

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

type activityRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	SearchFunc  func(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, int, error)
	CreateFunc  func(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	UpdateFunc  func(ctx context.Context, a *domain.Activity) (*domain.Activity, error)

	mu    sync.Mutex
	calls struct {
		GetByID []uuid.UUID
		Search  []domain.ActivityFilter
		Create  []*domain.Activity
		Update  []*domain.Activity
	}
}

func (m *activityRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *activityRepoMock) Search(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, int, error) {
	m.mu.Lock()
	m.calls.Search = append(m.calls.Search, f)
	m.mu.Unlock()
	return m.SearchFunc(ctx, f)
}

func (m *activityRepoMock) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, a)
	m.mu.Unlock()
	return m.CreateFunc(ctx, a)
}

func (m *activityRepoMock) Update(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, a)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, a)
}

func (m *activityRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *activityRepoMock) SearchCalls() []domain.ActivityFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Search
}

func (m *activityRepoMock) CreateCalls() []*domain.Activity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *activityRepoMock) UpdateCalls() []*domain.Activity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}
