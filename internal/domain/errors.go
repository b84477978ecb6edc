package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInvariant           = errors.New("invariant violation")
	ErrInvalidInput        = errors.New("invalid input")
	ErrAlreadyDeleted      = errors.New("already deleted")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// QR resolution pipeline failures. Each stage fails with its own kind so
// callers can tell "no symbol in the image" from "symbol decoded but not
// registered". ErrCodeNotFound and ErrActivityNotFound unwrap to
// ErrNotFound; the image-stage errors unwrap to ErrInvalidInput.
var (
	ErrInvalidImage     = &PipelineError{stage: "decode-image", msg: "bytes are not a readable image", kind: ErrInvalidInput}
	ErrNoCodeFound      = &PipelineError{stage: "detect-symbol", msg: "no qr symbol detected in image", kind: ErrInvalidInput}
	ErrEmptyPayload     = &PipelineError{stage: "read-payload", msg: "qr symbol has a blank payload", kind: ErrInvalidInput}
	ErrCodeNotFound     = &PipelineError{stage: "lookup-code", msg: "qr code is not registered", kind: ErrNotFound}
	ErrActivityNotFound = &PipelineError{stage: "lookup-activity", msg: "activity referenced by qr code does not exist", kind: ErrNotFound}
)

// PipelineError is a distinct failure of one QR resolution stage.
type PipelineError struct {
	stage string
	msg   string
	kind  error
}

func (e *PipelineError) Error() string { return e.stage + ": " + e.msg }

func (e *PipelineError) Unwrap() error { return e.kind }

// Stage names the pipeline stage that failed.
func (e *PipelineError) Stage() string { return e.stage }

// InvariantError reports a violated action-binding invariant.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string { return "invariant: " + e.Reason }

func (e *InvariantError) Unwrap() error { return ErrInvariant }

// Binding invariant violations.
var (
	ErrNoActionBound        = &InvariantError{Reason: "no behavior bound, exactly one of action/dance/expression/skill/extended action is required"}
	ErrMultipleActionsBound = &InvariantError{Reason: "more than one behavior bound, a trigger maps to a single behavior"}
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
