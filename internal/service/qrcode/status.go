package qrcode

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// ChangeStatus moves a code record between active and disabled. Disabled
// codes keep their rows and images but stop resolving.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, status int) (*domain.QrCode, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if status != domain.StatusActive && status != domain.StatusDisabled {
		return nil, domain.NewValidationError("status", "must be active or disabled")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.StatusDeleted {
		return nil, fmt.Errorf("qr code %s: %w", id, domain.ErrAlreadyDeleted)
	}

	existing.Status = status

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("change qr code status: %w", err)
	}

	s.invalidate()
	s.cache.Put(itemGroup, cache.Key("id", updated.ID), *updated)

	s.log.InfoContext(ctx, "qr code status changed",
		slog.String("id", id.String()),
		slog.Int("status", status),
	)

	return updated, nil
}

// Disable is ChangeStatus to the disabled state.
func (s *Service) Disable(ctx context.Context, id uuid.UUID) (*domain.QrCode, error) {
	return s.ChangeStatus(ctx, id, domain.StatusDisabled)
}

// Delete soft-deletes a code record, freeing its code string for reuse.
// The uploaded image is left in place.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status == domain.StatusDeleted {
		return fmt.Errorf("qr code %s: %w", id, domain.ErrAlreadyDeleted)
	}

	existing.Status = domain.StatusDeleted
	if _, err := s.repo.Update(ctx, existing); err != nil {
		return fmt.Errorf("delete qr code: %w", err)
	}

	s.invalidate()

	s.log.InfoContext(ctx, "qr code deleted", slog.String("id", id.String()))

	return nil
}
