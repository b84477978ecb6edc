package qrcode

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

// ListResult is one page of code records plus the total match count.
type ListResult struct {
	Items []domain.QrCode
	Total int
	Page  int
	Size  int
}

type codePage struct {
	Items []domain.QrCode
	Total int
}

// List returns one page of code records, newest first. Cached per filter.
func (s *Service) List(ctx context.Context, f domain.ListFilter) (*ListResult, error) {
	f.Normalize()

	key := cache.Key(f.Page, f.Size, f.Status)
	page, err := cache.Through(s.cache, listGroup, key, func() (codePage, error) {
		items, total, err := s.repo.List(ctx, f)
		if err != nil {
			return codePage{}, fmt.Errorf("list qr codes: %w", err)
		}
		return codePage{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{Items: page.Items, Total: page.Total, Page: f.Page, Size: f.Size}, nil
}

// GetByID returns a code record by id, whatever its status. Cached by id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.QrCode, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	c, err := cache.Through(s.cache, itemGroup, cache.Key("id", id), func() (domain.QrCode, error) {
		found, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return domain.QrCode{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByCode returns the non-deleted record for an exact code string.
// Cached by code; the match is case-sensitive because the code is the
// literal payload carried by the printed symbol.
func (s *Service) GetByCode(ctx context.Context, code string) (*domain.QrCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("code", "required")
	}

	c, err := cache.Through(s.cache, itemGroup, cache.Key("code", code), func() (domain.QrCode, error) {
		found, err := s.repo.GetByCode(ctx, code)
		if err != nil {
			return domain.QrCode{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}
