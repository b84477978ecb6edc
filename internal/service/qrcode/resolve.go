package qrcode

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
	"github.com/alpha-code/activity-service/internal/qr"
)

// ResolveImage runs the full resolution pipeline on a photographed code:
// decode the image bytes, read the symbol payload, look up the code record
// and return its activity. Each stage fails with its own error so a client
// can tell an unreadable photo from an unregistered code from a dangling
// activity reference. The pipeline never mutates anything.
func (s *Service) ResolveImage(ctx context.Context, image []byte) (*domain.Activity, error) {
	payload, err := qr.Decode(image)
	if err != nil {
		return nil, err
	}

	record, err := s.lookupCode(ctx, payload)
	if err != nil {
		return nil, err
	}

	activity, err := s.lookupActivity(ctx, record)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "qr code resolved",
		slog.String("code", record.Code),
		slog.String("activity_id", activity.ID.String()),
	)

	return activity, nil
}

// lookupCode finds the active record for a scanned payload. Disabled and
// deleted codes both report as unregistered.
func (s *Service) lookupCode(ctx context.Context, payload string) (*domain.QrCode, error) {
	record, err := s.GetByCode(ctx, payload)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCodeNotFound
		}
		return nil, err
	}
	if record.Status != domain.StatusActive {
		return nil, domain.ErrCodeNotFound
	}
	return record, nil
}

// lookupActivity resolves the activity a code points at, sharing the
// activity service's point cache.
func (s *Service) lookupActivity(ctx context.Context, record *domain.QrCode) (*domain.Activity, error) {
	a, err := cache.Through(s.cache, activityGroup, cache.Key("id", record.ActivityID), func() (domain.Activity, error) {
		found, err := s.activities.GetByID(ctx, record.ActivityID)
		if err != nil {
			return domain.Activity{}, err
		}
		return *found, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	if a.Status == domain.StatusDeleted {
		return nil, domain.ErrActivityNotFound
	}
	return &a, nil
}
