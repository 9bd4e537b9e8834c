// Package errors provides centralized error handling for mit.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
var (
	// ErrInvalidDate indicates that a date token did not match any accepted grammar.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTaskID indicates that a task id is not numeric or is outside
	// the range of lines in the todo file.
	ErrInvalidTaskID = errors.New("invalid task id")

	// ErrMalformedMarker indicates that a stored {...} marker does not match
	// any canonical period shape. Callers treat such tasks as plain tasks.
	ErrMalformedMarker = errors.New("malformed period marker")

	// ErrNotMIT indicates that the task has no period marker to remove.
	ErrNotMIT = errors.New("task is not an MIT")

	// ErrEmptyTask indicates that a task would be created without any text.
	ErrEmptyTask = errors.New("task text is empty")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTodoFileNotFound indicates the configured todo file does not exist.
	ErrTodoFileNotFound = errors.New("todo file not found")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
