package services

import (
	"errors"
	"strings"

	"github.com/AnoopG7/Day-Tracker-sub001/validation"
)

var (
	// ErrNotFound means no row matched the caller's key.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means the database unique index rejected a write. It is
	// surfaced as-is so a concurrent duplicate never masquerades as success
	// or as a validation failure.
	ErrConflict = errors.New("record already exists")
)

// ValidationError carries the field-level failures from the validation
// package across the service boundary.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Result.Errors))
	for _, fe := range e.Result.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
