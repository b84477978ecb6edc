// Package joystick implements controller button bindings: one robot button
// of one account triggers exactly one behavior.
package joystick

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

type joystickRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Joystick, error)
	ListByOwner(ctx context.Context, accountID, robotID uuid.UUID) ([]domain.Joystick, error)
	FindActiveTrigger(ctx context.Context, accountID, robotID uuid.UUID, buttonCode string) (*domain.Joystick, error)
	Create(ctx context.Context, j *domain.Joystick) (*domain.Joystick, error)
	Update(ctx context.Context, j *domain.Joystick) (*domain.Joystick, error)
}

type cacheStore interface {
	Get(group, key string) (any, bool)
	Put(group, key string, v any)
	Evict(group, key string)
	Invalidate(group string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const listGroup = "joystick_list"

// Service provides joystick binding operations.
type Service struct {
	repo  joystickRepo
	txm   txManager
	cache cacheStore
	log   *slog.Logger
}

// NewService creates a new joystick service.
func NewService(log *slog.Logger, repo joystickRepo, txm txManager, cache cacheStore) *Service {
	return &Service{
		repo:  repo,
		txm:   txm,
		cache: cache,
		log:   log.With("service", "joystick"),
	}
}

// checkTriggerFree fails with ErrConflict when another active binding holds
// the (account, robot, button) key. Soft-deleted bindings free their key.
func (s *Service) checkTriggerFree(ctx context.Context, accountID, robotID uuid.UUID, buttonCode string, selfID uuid.UUID) error {
	existing, err := s.repo.FindActiveTrigger(ctx, accountID, robotID, buttonCode)
	if err != nil {
		return err
	}
	if existing == nil || existing.ID == selfID {
		return nil
	}
	return fmt.Errorf("button %q already bound by %s: %w", buttonCode, existing.ID, domain.ErrConflict)
}
