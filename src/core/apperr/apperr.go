package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every module. Handlers translate these into
// HTTP statuses in one place instead of picking codes ad hoc.
var (
	ErrUnauthorized = errors.New("unauthorized action")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrNotFound     = errors.New("record not found")
)

// ValidationError reports a malformed, missing or oversized input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for the given field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
