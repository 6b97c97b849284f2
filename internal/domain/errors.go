package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateSlug is returned when creating an event whose slug is already taken.
var ErrDuplicateSlug = errors.New("slug already in use")

// ErrInvalidCredentials is returned when an admin login fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError rejects a single write and names the first offending field.
// The caller is expected to correct that field and resubmit.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is invalid", e.Field)
}

// NewValidationError returns a ValidationError for the given field.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// ReferenceError rejects a write whose named field references a record
// that does not exist at the moment of the write.
type ReferenceError struct {
	Field string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("field %q references a record that does not exist", e.Field)
}

// NewReferenceError returns a ReferenceError for the given field.
func NewReferenceError(field string) *ReferenceError {
	return &ReferenceError{Field: field}
}
