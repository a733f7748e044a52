package apperr

import (
	"errors"
	"strings"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrWrongState is returned when a workflow operation is not allowed in the current modal state.
var ErrWrongState = errors.New("operation not allowed in current state")

// ValidationError lists the fields that blocked a save.
type ValidationError struct {
	Fields []string
}

// NewValidationError returns nil when fields is empty.
func NewValidationError(fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// Is makes errors.Is(err, ErrInvalid) true for validation failures.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Fields extracts the offending field names from err, if it is a validation failure.
func Fields(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
