// Package constants holds values shared across mit. It MUST NOT import any
// other internal package.
package constants

import "time"

// Directory and file names.
const (
	// MitHome is the directory under the user's home where mit keeps its
	// configuration and logs. A project may carry its own MitHome directory
	// with a config.yaml that overrides the global one.
	MitHome = ".mit"

	// LogsDir is the log directory inside MitHome.
	LogsDir = "logs"

	// CLILogFileName is the rotating log file in LogsDir.
	CLILogFileName = "mit.log"

	// ConfigFileName is the config file name inside MitHome.
	ConfigFileName = "config.yaml"

	// TodoFileName is the default todo file name.
	TodoFileName = "todo.txt"
)

// Environment variables.
const (
	// EnvPrefix prefixes every mit environment override, e.g. MIT_TODO_FILE.
	EnvPrefix = "MIT"

	// EnvHome overrides the MitHome location.
	EnvHome = "MIT_HOME"

	// EnvTodoFile is the todo.sh variable naming the todo file.
	EnvTodoFile = "TODO_FILE"

	// EnvTodoDir is the todo.sh variable naming the directory holding todo.txt.
	EnvTodoDir = "TODO_DIR"
)

// Log rotation defaults.
const (
	LogMaxSizeMB  = 5
	LogMaxBackups = 3
	LogMaxAge     = 28 * 24 * time.Hour
	LogCompress   = true
)

// Creation date layout used by todo.txt.
const CreatedDateLayout = "2006-01-02"
