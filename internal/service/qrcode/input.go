package qrcode

import (
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

const (
	maxNameLen  = 255
	maxCodeLen  = 500
	maxColorLen = 50
)

// CreateQrCodeInput holds the parameters for registering a code.
type CreateQrCodeInput struct {
	Name       string
	Code       string
	Color      *string
	AccountID  uuid.UUID
	ActivityID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateQrCodeInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	code := strings.TrimSpace(i.Code)
	if code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if len(code) > maxCodeLen {
		errs = append(errs, domain.FieldError{Field: "code", Message: "max 500 characters"})
	}

	if i.Color != nil && len(strings.TrimSpace(*i.Color)) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 50 characters"})
	}
	if i.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if i.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateQrCodeInput holds the parameters for a full code record update.
type UpdateQrCodeInput struct {
	ID         uuid.UUID
	Name       string
	Code       string
	Color      *string
	AccountID  uuid.UUID
	ActivityID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateQrCodeInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	code := strings.TrimSpace(i.Code)
	if code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if len(code) > maxCodeLen {
		errs = append(errs, domain.FieldError{Field: "code", Message: "max 500 characters"})
	}

	if i.Color != nil && len(strings.TrimSpace(*i.Color)) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 50 characters"})
	}
	if i.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if i.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PatchQrCodeInput holds a partial update: nil means "leave as is".
type PatchQrCodeInput struct {
	ID     uuid.UUID
	Params domain.QrCodeUpdateParams
}

// Validate checks all fields and collects all errors.
func (i PatchQrCodeInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	p := i.Params
	if p.Name == nil && p.Code == nil && p.Color == nil && p.AccountID == nil && p.ActivityID == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}
	if p.Code != nil {
		code := strings.TrimSpace(*p.Code)
		if code == "" {
			errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
		}
		if len(code) > maxCodeLen {
			errs = append(errs, domain.FieldError{Field: "code", Message: "max 500 characters"})
		}
	}
	if p.Color != nil && len(strings.TrimSpace(*p.Color)) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 50 characters"})
	}
	if p.AccountID != nil && *p.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "must not be the zero id"})
	}
	if p.ActivityID != nil && *p.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "must not be the zero id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
