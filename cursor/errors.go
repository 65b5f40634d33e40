package cursor

import (
	"errors"
	"fmt"
	"io"
)

// ErrEndOfStream is returned by Forward at the end of a stream and by Backward at its beginning.
// It wraps io.EOF, so code checking for io.EOF keeps working.
var ErrEndOfStream = fmt.Errorf("no further element in the requested direction: %w", io.EOF)

// ErrInvalidArgument is wrapped by every ValidationError
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError reports a stream construction argument that cannot be used
type ValidationError struct {
	Field  string
	Value  any
	Reason string
	Hint   string
}

func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// WithHint adds a suggestion for fixing the argument
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("cursor: invalid %s=%v (%s)", e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
