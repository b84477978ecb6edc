package behavior

import (
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

const (
	maxNameLen        = 255
	maxCodeLen        = 100
	maxDescriptionLen = 2000
)

// CreateBehaviorInput holds the parameters for creating a behavior record.
type CreateBehaviorInput struct {
	Name         string
	Code         string
	Description  *string
	Duration     int
	CanInterrupt bool
	Icon         *string
	Type         *string
	RobotModelID uuid.UUID
	Status       *int // nil defaults to active
}

// Validate checks all fields and collects all errors.
func (i CreateBehaviorInput) Validate() error {
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
		errs = append(errs, domain.FieldError{Field: "code", Message: "max 100 characters"})
	}

	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.Duration < 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must not be negative"})
	}
	if i.RobotModelID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "robot_model_id", Message: "required"})
	}
	if i.Status != nil && *i.Status == domain.StatusDeleted {
		errs = append(errs, domain.FieldError{Field: "status", Message: "cannot create a deleted record"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBehaviorInput holds the parameters for a full behavior update.
// Every mutable field is replaced.
type UpdateBehaviorInput struct {
	ID           uuid.UUID
	Name         string
	Code         string
	Description  *string
	Duration     int
	CanInterrupt bool
	Icon         *string
	Type         *string
	RobotModelID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateBehaviorInput) Validate() error {
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
		errs = append(errs, domain.FieldError{Field: "code", Message: "max 100 characters"})
	}

	if i.Duration < 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must not be negative"})
	}
	if i.RobotModelID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "robot_model_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PatchBehaviorInput holds a partial update: nil means "leave as is".
type PatchBehaviorInput struct {
	ID     uuid.UUID
	Params domain.BehaviorUpdateParams
}

// Validate checks all fields and collects all errors.
func (i PatchBehaviorInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	p := i.Params
	if p.Name == nil && p.Code == nil && p.Description == nil && p.Duration == nil &&
		p.CanInterrupt == nil && p.Icon == nil && p.Type == nil && p.Status == nil &&
		p.RobotModelID == nil {
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
			errs = append(errs, domain.FieldError{Field: "code", Message: "max 100 characters"})
		}
	}
	if p.Duration != nil && *p.Duration < 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must not be negative"})
	}
	if p.RobotModelID != nil && *p.RobotModelID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "robot_model_id", Message: "must not be the zero id"})
	}
	if p.Status != nil && *p.Status == domain.StatusDeleted {
		errs = append(errs, domain.FieldError{Field: "status", Message: "use delete to remove a record"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
