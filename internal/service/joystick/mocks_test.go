package joystick

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

type triggerKey struct {
	AccountID  uuid.UUID
	RobotID    uuid.UUID
	ButtonCode string
}

type joystickRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Joystick, error)
	ListByOwnerFunc       func(ctx context.Context, accountID, robotID uuid.UUID) ([]domain.Joystick, error)
	FindActiveTriggerFunc func(ctx context.Context, accountID, robotID uuid.UUID, buttonCode string) (*domain.Joystick, error)
	CreateFunc            func(ctx context.Context, j *domain.Joystick) (*domain.Joystick, error)
	UpdateFunc            func(ctx context.Context, j *domain.Joystick) (*domain.Joystick, error)

	mu    sync.Mutex
	calls struct {
		GetByID           []uuid.UUID
		ListByOwner       [][2]uuid.UUID
		FindActiveTrigger []triggerKey
		Create            []*domain.Joystick
		Update            []*domain.Joystick
	}
}

func (m *joystickRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Joystick, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *joystickRepoMock) ListByOwner(ctx context.Context, accountID, robotID uuid.UUID) ([]domain.Joystick, error) {
	m.mu.Lock()
	m.calls.ListByOwner = append(m.calls.ListByOwner, [2]uuid.UUID{accountID, robotID})
	m.mu.Unlock()
	return m.ListByOwnerFunc(ctx, accountID, robotID)
}

func (m *joystickRepoMock) FindActiveTrigger(ctx context.Context, accountID, robotID uuid.UUID, buttonCode string) (*domain.Joystick, error) {
	m.mu.Lock()
	m.calls.FindActiveTrigger = append(m.calls.FindActiveTrigger, triggerKey{accountID, robotID, buttonCode})
	m.mu.Unlock()
	return m.FindActiveTriggerFunc(ctx, accountID, robotID, buttonCode)
}

func (m *joystickRepoMock) Create(ctx context.Context, j *domain.Joystick) (*domain.Joystick, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, j)
	m.mu.Unlock()
	return m.CreateFunc(ctx, j)
}

func (m *joystickRepoMock) Update(ctx context.Context, j *domain.Joystick) (*domain.Joystick, error) {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, j)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, j)
}

func (m *joystickRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *joystickRepoMock) ListByOwnerCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ListByOwner
}

func (m *joystickRepoMock) FindActiveTriggerCalls() []triggerKey {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.FindActiveTrigger
}

func (m *joystickRepoMock) CreateCalls() []*domain.Joystick {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *joystickRepoMock) UpdateCalls() []*domain.Joystick {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

// txManagerMock runs the callback directly, without a real transaction.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
