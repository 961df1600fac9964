package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrDuplicateEntry    = errors.New("duplicate entry")
	ErrValidation        = errors.New("validation error")
	ErrUnknownStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError reports a malformed or missing field on a single record.
type ValidationError struct {
	Entity   string
	RecordID uint
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.RecordID == 0 {
		return fmt.Sprintf("%s: %s %s", e.Entity, e.Field, e.Message)
	}
	return fmt.Sprintf("%s #%d: %s %s", e.Entity, e.RecordID, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for one field of one record.
func NewValidationError(entity string, recordID uint, field, message string) *ValidationError {
	return &ValidationError{Entity: entity, RecordID: recordID, Field: field, Message: message}
}

// UnknownStatusError reports a stored status string outside the entity's enum.
// It is recoverable: aggregations put the record in the unknown bucket.
type UnknownStatusError struct {
	Entity   string
	RecordID uint
	Value    string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s #%d: unknown status %q", e.Entity, e.RecordID, e.Value)
}

func (e *UnknownStatusError) Unwrap() error { return ErrUnknownStatus }

// TransitionError reports an operator action that the current status does not allow.
type TransitionError struct {
	Entity string
	From   string
	Action string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %s", e.Entity, e.Action, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
