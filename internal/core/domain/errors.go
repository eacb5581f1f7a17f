package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrBookNotFound      = errors.New("book not found")
	ErrLoanNotFound      = errors.New("loan not found")
	ErrBookAlreadyLoaned = errors.New("book already loaned")
	ErrLoanNotActive     = errors.New("loan is not active")
)

// ValidationError signals malformed value-object input. The caller must
// correct the input and resubmit; retrying unchanged will fail again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
