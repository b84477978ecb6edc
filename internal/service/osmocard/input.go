package osmocard

import (
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

const (
	maxNameLen  = 255
	maxColorLen = 50
)

// CreateCardInput holds the parameters for creating a card binding.
type CreateCardInput struct {
	Name  string
	Color string
	Ref   domain.ActionRef
}

// Validate checks all fields and collects all errors. The action slot
// invariant is checked separately.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if len(strings.TrimSpace(i.Color)) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCardInput holds the parameters for a full card update.
type UpdateCardInput struct {
	ID    uuid.UUID
	Name  string
	Color string
	Ref   domain.ActionRef
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
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
	if len(strings.TrimSpace(i.Color)) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PatchCardInput holds a partial update: nil means "leave as is", and an
// empty Ref keeps the current binding.
type PatchCardInput struct {
	ID     uuid.UUID
	Params domain.OsmoCardUpdateParams
}

// Validate checks all fields and collects all errors.
func (i PatchCardInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Params.Name != nil {
		name := strings.TrimSpace(*i.Params.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}
	if i.Params.Color != nil && len(strings.TrimSpace(*i.Params.Color)) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
