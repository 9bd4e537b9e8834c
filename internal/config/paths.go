package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrz1836/mit/internal/constants"
	"github.com/mrz1836/mit/internal/errors"
)

// GlobalConfigDir returns the mit home directory: $MIT_HOME when set,
// otherwise ~/.mit.
func GlobalConfigDir() (string, error) {
	if dir := os.Getenv(constants.EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.MitHome), nil
}

// GlobalConfigPath returns the global config file path.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the project config path, relative to the
// working directory.
func ProjectConfigPath() string {
	return filepath.Join(constants.MitHome, constants.ConfigFileName)
}

// LogFilePath returns the rotating log file path.
func LogFilePath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogsDir, constants.CLILogFileName), nil
}

// DefaultTodoFile returns $TODO_DIR/todo.txt when TODO_DIR is set, else
// ~/todo.txt.
func DefaultTodoFile() string {
	if dir := os.Getenv(constants.EnvTodoDir); dir != "" {
		return filepath.Join(ExpandHome(dir), constants.TodoFileName)
	}
	return filepath.Join("~", constants.TodoFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory. Paths
// without one, and paths where the home directory is unknown, are returned
// unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
