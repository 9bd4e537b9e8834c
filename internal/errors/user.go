package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice (not a map) because errors.Is() requires chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoEntries = []errorEntry{
	{
		err: ErrInvalidDate,
		info: ErrorInfo{
			Message: "The date could not be understood.",
			Action:  "Use today, tomorrow, a weekday, Nd, YYYY.MM.DD, a month name, YYYY.MM, qN, YYYYqN or YYYY.",
		},
	},
	{
		err: ErrInvalidTaskID,
		info: ErrorInfo{
			Message: "The task id does not refer to a line in the todo file.",
			Action:  "Run 'mit' to list MITs with their line numbers.",
		},
	},
	{
		err: ErrNotMIT,
		info: ErrorInfo{
			Message: "That task is not an MIT.",
			Action:  "Use 'mit mv <id> <date>' to make it one.",
		},
	},
	{
		err: ErrEmptyTask,
		info: ErrorInfo{
			Message: "A task needs some text.",
			Action:  "Run 'mit <date> <task text>'.",
		},
	},
	{
		err: ErrTodoFileNotFound,
		info: ErrorInfo{
			Message: "The todo file does not exist.",
			Action:  "Set todo.file in ~/.mit/config.yaml, export TODO_FILE, or pass --file.",
		},
	},
	{
		err: ErrConfigInvalid,
		info: ErrorInfo{
			Message: "The configuration is invalid.",
			Action:  "Run 'mit config show' and fix the reported value.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Unknown output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Run 'mit usage' for the accepted forms.",
		},
	},
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}
	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve the issue. The action is empty for
// unrecognized errors.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
