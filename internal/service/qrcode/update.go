package qrcode

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// Update replaces the mutable fields of a code record. The stored image is
// regenerated only when the code string actually changes; unrelated edits
// keep the existing URL.
func (s *Service) Update(ctx context.Context, input UpdateQrCodeInput) (*domain.QrCode, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.StatusDeleted {
		return nil, fmt.Errorf("qr code %s: %w", input.ID, domain.ErrAlreadyDeleted)
	}

	code := strings.TrimSpace(input.Code)
	if code != existing.Code {
		if err := s.checkCodeFree(ctx, code, existing.ID); err != nil {
			return nil, err
		}
		imageURL, err := s.generateImage(ctx, code)
		if err != nil {
			return nil, err
		}
		existing.ImageURL = imageURL
	}

	if input.ActivityID != existing.ActivityID {
		if _, err := s.activities.GetByID(ctx, input.ActivityID); err != nil {
			return nil, fmt.Errorf("target activity: %w", err)
		}
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Code = code
	existing.Color = input.Color
	existing.AccountID = input.AccountID
	existing.ActivityID = input.ActivityID

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update qr code: %w", err)
	}

	s.invalidate()
	s.cache.Put(itemGroup, cache.Key("id", updated.ID), *updated)

	s.log.InfoContext(ctx, "qr code updated", slog.String("id", updated.ID.String()))

	return updated, nil
}

// Patch overlays the provided fields onto the stored record. Regeneration
// follows the same rule as Update: only a changed code produces a new image.
func (s *Service) Patch(ctx context.Context, input PatchQrCodeInput) (*domain.QrCode, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.StatusDeleted {
		return nil, fmt.Errorf("qr code %s: %w", input.ID, domain.ErrAlreadyDeleted)
	}

	p := input.Params

	if p.Code != nil {
		code := strings.TrimSpace(*p.Code)
		if code != existing.Code {
			if err := s.checkCodeFree(ctx, code, existing.ID); err != nil {
				return nil, err
			}
			imageURL, err := s.generateImage(ctx, code)
			if err != nil {
				return nil, err
			}
			existing.ImageURL = imageURL
		}
		existing.Code = code
	}
	if p.ActivityID != nil && *p.ActivityID != existing.ActivityID {
		if _, err := s.activities.GetByID(ctx, *p.ActivityID); err != nil {
			return nil, fmt.Errorf("target activity: %w", err)
		}
		existing.ActivityID = *p.ActivityID
	}
	if p.Name != nil {
		existing.Name = strings.TrimSpace(*p.Name)
	}
	if p.Color != nil {
		existing.Color = p.Color
	}
	if p.AccountID != nil {
		existing.AccountID = *p.AccountID
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("patch qr code: %w", err)
	}

	s.invalidate()
	s.cache.Put(itemGroup, cache.Key("id", updated.ID), *updated)

	s.log.InfoContext(ctx, "qr code patched", slog.String("id", updated.ID.String()))

	return updated, nil
}
