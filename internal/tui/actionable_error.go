package tui

import (
	"github.com/mrz1836/mit/internal/errors"
)

// ActionableError is an error message paired with a next step for the user.
type ActionableError struct {
	// Message is the primary error message.
	Message string
	// Suggestion says what to do about it. May be empty.
	Suggestion string
	// Context carries the underlying detail, shown in parentheses.
	Context string

	err error
}

// NewActionableError creates an ActionableError.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{Message: msg, Suggestion: suggestion}
}

// FromError maps err onto its user message and suggestion. The original
// error text is kept as context when it adds something.
func FromError(err error) *ActionableError {
	msg, action := errors.Actionable(err)
	ae := &ActionableError{Message: msg, Suggestion: action, err: err}
	if detail := err.Error(); detail != msg {
		ae.Context = detail
	}
	return ae
}

// Error implements the error interface.
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// Unwrap returns the error FromError was built from.
func (e *ActionableError) Unwrap() error {
	return e.err
}

// WithContext sets Context and returns e.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}
