package domain

import (
	"time"

	"github.com/google/uuid"
)

// QrCode maps a scannable code string to an activity. The code string is
// globally unique among non-deleted rows. ImageURL points at the generated
// 300x300 PNG in the blob store and is regenerated only when Code changes.
type QrCode struct {
	ID         uuid.UUID
	Name       string
	Code       string
	Color      *string
	ImageURL   string
	AccountID  uuid.UUID
	ActivityID uuid.UUID
	Status     int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// QrCodeUpdateParams carries a partial update; nil means "leave as is".
type QrCodeUpdateParams struct {
	Name       *string
	Code       *string
	Color      *string
	AccountID  *uuid.UUID
	ActivityID *uuid.UUID
}
