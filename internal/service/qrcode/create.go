package qrcode

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
	"github.com/alpha-code/activity-service/internal/qr"
)

// Create registers a new code. The code string must be free among
// non-deleted records and the target activity must exist. The scannable
// PNG is generated and uploaded before the row is written.
func (s *Service) Create(ctx context.Context, input CreateQrCodeInput) (*domain.QrCode, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(input.Code)

	if err := s.checkCodeFree(ctx, code, uuid.Nil); err != nil {
		return nil, err
	}
	if _, err := s.activities.GetByID(ctx, input.ActivityID); err != nil {
		return nil, fmt.Errorf("target activity: %w", err)
	}

	imageURL, err := s.generateImage(ctx, code)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.QrCode{
		Name:       strings.TrimSpace(input.Name),
		Code:       code,
		Color:      input.Color,
		ImageURL:   imageURL,
		AccountID:  input.AccountID,
		ActivityID: input.ActivityID,
		Status:     domain.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("create qr code: %w", err)
	}

	s.invalidate()
	s.cache.Put(itemGroup, cache.Key("id", created.ID), *created)

	s.log.InfoContext(ctx, "qr code created",
		slog.String("id", created.ID.String()),
		slog.String("code", created.Code),
	)

	return created, nil
}

// generateImage renders the 300x300 PNG for a code string and uploads it,
// returning the public URL.
func (s *Service) generateImage(ctx context.Context, code string) (string, error) {
	png, err := qr.Generate(code)
	if err != nil {
		return "", fmt.Errorf("generate qr image: %w", err)
	}

	url, err := s.blob.Upload(ctx, imageKey(code), png, "image/png")
	if err != nil {
		return "", fmt.Errorf("upload qr image: %w", err)
	}
	return url, nil
}
