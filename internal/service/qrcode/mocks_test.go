package qrcode

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

type qrRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.QrCode, error)
	GetByCodeFunc  func(ctx context.Context, code string) (*domain.QrCode, error)
	FindByCodeFunc func(ctx context.Context, code string) (*domain.QrCode, error)
	ListFunc       func(ctx context.Context, f domain.ListFilter) ([]domain.QrCode, int, error)
	CreateFunc     func(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error)
	UpdateFunc     func(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error)

	mu    sync.Mutex
	calls struct {
		GetByID    []uuid.UUID
		GetByCode  []string
		FindByCode []string
		List       []domain.ListFilter
		Create     []*domain.QrCode
		Update     []*domain.QrCode
	}
}

func (m *qrRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.QrCode, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *qrRepoMock) GetByCode(ctx context.Context, code string) (*domain.QrCode, error) {
	m.mu.Lock()
	m.calls.GetByCode = append(m.calls.GetByCode, code)
	m.mu.Unlock()
	return m.GetByCodeFunc(ctx, code)
}

func (m *qrRepoMock) FindByCode(ctx context.Context, code string) (*domain.QrCode, error) {
	m.mu.Lock()
	m.calls.FindByCode = append(m.calls.FindByCode, code)
	m.mu.Unlock()
	return m.FindByCodeFunc(ctx, code)
}

func (m *qrRepoMock) List(ctx context.Context, f domain.ListFilter) ([]domain.QrCode, int, error) {
	m.mu.Lock()
	m.calls.List = append(m.calls.List, f)
	m.mu.Unlock()
	return m.ListFunc(ctx, f)
}

func (m *qrRepoMock) Create(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, c)
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *qrRepoMock) Update(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error) {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, c)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, c)
}

func (m *qrRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *qrRepoMock) GetByCodeCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByCode
}

func (m *qrRepoMock) FindByCodeCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.FindByCode
}

func (m *qrRepoMock) ListCalls() []domain.ListFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}

func (m *qrRepoMock) CreateCalls() []*domain.QrCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *qrRepoMock) UpdateCalls() []*domain.QrCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

type activityRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Activity, error)

	mu    sync.Mutex
	calls []uuid.UUID
}

func (m *activityRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	m.mu.Lock()
	m.calls = append(m.calls, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *activityRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type uploadCall struct {
	Key         string
	ContentType string
	Size        int
}

type blobStoreMock struct {
	UploadFunc func(ctx context.Context, key string, data []byte, contentType string) (string, error)

	mu    sync.Mutex
	calls []uploadCall
}

func (m *blobStoreMock) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, uploadCall{Key: key, ContentType: contentType, Size: len(data)})
	m.mu.Unlock()
	return m.UploadFunc(ctx, key, data, contentType)
}

func (m *blobStoreMock) UploadCalls() []uploadCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
