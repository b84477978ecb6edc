// Package qrcode implements scannable code records and the image
// resolution pipeline that turns a photographed code into an activity.
package qrcode

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

type qrRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.QrCode, error)
	GetByCode(ctx context.Context, code string) (*domain.QrCode, error)
	FindByCode(ctx context.Context, code string) (*domain.QrCode, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.QrCode, int, error)
	Create(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error)
	Update(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error)
}

type activityRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
}

type blobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type cacheStore interface {
	Get(group, key string) (any, bool)
	Put(group, key string, v any)
	Evict(group, key string)
	Invalidate(group string)
}

const (
	listGroup = "qr_codes_list"
	itemGroup = "qr_codes"

	// activityGroup is shared with the activity service so both see the
	// same point entries.
	activityGroup = "activities"
)

// Service provides code record operations and image resolution.
type Service struct {
	repo       qrRepo
	activities activityRepo
	blob       blobStore
	cache      cacheStore
	log        *slog.Logger
}

// NewService creates a new code service.
func NewService(log *slog.Logger, repo qrRepo, activities activityRepo, blob blobStore, cache cacheStore) *Service {
	return &Service{
		repo:       repo,
		activities: activities,
		blob:       blob,
		cache:      cache,
		log:        log.With("service", "qrcode"),
	}
}

func (s *Service) invalidate() {
	s.cache.Invalidate(listGroup)
	s.cache.Invalidate(itemGroup)
}

// checkCodeFree fails with ErrConflict when another non-deleted record
// holds the code string.
func (s *Service) checkCodeFree(ctx context.Context, code string, selfID uuid.UUID) error {
	existing, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("check code: %w", err)
	}
	if existing == nil || existing.ID == selfID {
		return nil
	}
	return fmt.Errorf("code %q already used by %s: %w", code, existing.ID, domain.ErrConflict)
}

// imageKey names the uploaded PNG. The millisecond stamp keeps every
// regeneration at a fresh object key, so stale CDN copies never shadow a
// new code.
func imageKey(code string) string {
	return fmt.Sprintf("qrcodes/qr_%s_%d.png", code, time.Now().UnixMilli())
}
