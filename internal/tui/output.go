package tui

import "io"

// Output prints status lines and structured values.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error, with its suggestion when it is an ActionableError.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// JSON outputs a value as JSON.
	JSON(v any) error
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewOutput returns JSON output for FormatJSON and styled output otherwise.
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
