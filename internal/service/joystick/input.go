package joystick

import (
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

const maxButtonCodeLen = 50

// CreateJoystickInput holds the parameters for creating a button binding.
type CreateJoystickInput struct {
	AccountID  uuid.UUID
	RobotID    uuid.UUID
	ButtonCode string
	Type       string
	Ref        domain.ActionRef
}

// Validate checks all fields and collects all errors. The action slot
// invariant is checked separately, after the trigger uniqueness check.
func (i CreateJoystickInput) Validate() error {
	var errs []domain.FieldError

	if i.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if i.RobotID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "robot_id", Message: "required"})
	}

	button := strings.TrimSpace(i.ButtonCode)
	if button == "" {
		errs = append(errs, domain.FieldError{Field: "button_code", Message: "required"})
	}
	if len(button) > maxButtonCodeLen {
		errs = append(errs, domain.FieldError{Field: "button_code", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateJoystickInput holds the parameters for a full binding update.
// The owner pair is immutable; button, type and ref are replaced.
type UpdateJoystickInput struct {
	ID         uuid.UUID
	ButtonCode string
	Type       string
	Ref        domain.ActionRef
}

// Validate checks all fields and collects all errors.
func (i UpdateJoystickInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	button := strings.TrimSpace(i.ButtonCode)
	if button == "" {
		errs = append(errs, domain.FieldError{Field: "button_code", Message: "required"})
	}
	if len(button) > maxButtonCodeLen {
		errs = append(errs, domain.FieldError{Field: "button_code", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PatchJoystickInput holds a partial update: nil means "leave as is",
// and an empty Ref keeps the current binding.
type PatchJoystickInput struct {
	ID     uuid.UUID
	Params domain.JoystickUpdateParams
}

// Validate checks all fields and collects all errors.
func (i PatchJoystickInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Params.ButtonCode != nil {
		button := strings.TrimSpace(*i.Params.ButtonCode)
		if button == "" {
			errs = append(errs, domain.FieldError{Field: "button_code", Message: "required"})
		}
		if len(button) > maxButtonCodeLen {
			errs = append(errs, domain.FieldError{Field: "button_code", Message: "max 50 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
