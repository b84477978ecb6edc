package activity

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

const (
	maxNameLen        = 255
	maxDescriptionLen = 2000
)

// CreateActivityInput holds the parameters for creating an activity.
type CreateActivityInput struct {
	Name         string
	Description  string
	Data         json.RawMessage
	Type         string
	AccountID    uuid.UUID
	RobotModelID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateActivityInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if len(strings.TrimSpace(i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if len(i.Data) > 0 && !json.Valid(i.Data) {
		errs = append(errs, domain.FieldError{Field: "data", Message: "must be valid json"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
