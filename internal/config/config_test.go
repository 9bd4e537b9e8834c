package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/mit/internal/constants"
	"github.com/mrz1836/mit/internal/errors"
)

// isolate points HOME and MIT_HOME at a temp dir and clears todo.sh variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(constants.EnvHome, filepath.Join(home, constants.MitHome))
	t.Setenv(constants.EnvTodoFile, "")
	t.Setenv(constants.EnvTodoDir, "")
	t.Setenv("MIT_TODO_FILE", "")
	t.Setenv("MIT_LIST_DAYS", "")
	return home
}

func writeYAML(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromPaths_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadFromPaths(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "todo.txt"), cfg.Todo.File)
	assert.False(t, cfg.Todo.DateOnAdd)
	assert.Equal(t, 0, cfg.List.Days)
	assert.Equal(t, constants.LogMaxSizeMB, cfg.Log.MaxSizeMB)
	assert.Equal(t, constants.LogMaxBackups, cfg.Log.MaxBackups)
	assert.Equal(t, constants.LogMaxAge, cfg.Log.MaxAge)
	assert.True(t, cfg.Log.Compress)
}

func TestLoadFromPaths_ProjectOverridesGlobal(t *testing.T) {
	home := isolate(t)

	global := writeYAML(t, filepath.Join(home, "global.yaml"), `
todo:
  file: /tmp/global-todo.txt
  date_on_add: true
list:
  days: 14
log:
  max_age: 720h
`)
	project := writeYAML(t, filepath.Join(home, "project.yaml"), `
list:
  days: 7
`)

	cfg, err := LoadFromPaths(context.Background(), project, global)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/global-todo.txt", cfg.Todo.File)
	assert.True(t, cfg.Todo.DateOnAdd)
	assert.Equal(t, 7, cfg.List.Days)
	assert.Equal(t, 720*time.Hour, cfg.Log.MaxAge)
}

func TestLoadFromPaths_MissingFilesIgnored(t *testing.T) {
	home := isolate(t)

	_, err := LoadFromPaths(context.Background(), filepath.Join(home, "nope.yaml"), filepath.Join(home, "nada.yaml"))
	require.NoError(t, err)
}

func TestLoadFromPaths_EnvironmentPrecedence(t *testing.T) {
	home := isolate(t)
	global := writeYAML(t, filepath.Join(home, "global.yaml"), "todo:\n  file: /from/config.txt\n")

	t.Setenv(constants.EnvTodoFile, "/from/todo-sh.txt")
	cfg, err := LoadFromPaths(context.Background(), "", global)
	require.NoError(t, err)
	assert.Equal(t, "/from/todo-sh.txt", cfg.Todo.File)

	t.Setenv("MIT_TODO_FILE", "/from/mit.txt")
	cfg, err = LoadFromPaths(context.Background(), "", global)
	require.NoError(t, err)
	assert.Equal(t, "/from/mit.txt", cfg.Todo.File)

	t.Setenv("MIT_LIST_DAYS", "3")
	cfg, err = LoadFromPaths(context.Background(), "", global)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.List.Days)
}

func TestLoadFromPaths_TodoDir(t *testing.T) {
	isolate(t)
	t.Setenv(constants.EnvTodoDir, "/srv/todo")

	cfg, err := LoadFromPaths(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/todo", "todo.txt"), cfg.Todo.File)
}

func TestLoadFromPaths_Invalid(t *testing.T) {
	home := isolate(t)
	global := writeYAML(t, filepath.Join(home, "global.yaml"), "list:\n  days: -1\n")

	_, err := LoadFromPaths(context.Background(), "", global)
	require.ErrorIs(t, err, errors.ErrConfigInvalid)
}

func TestLoadFromPaths_BadYAML(t *testing.T) {
	home := isolate(t)
	global := writeYAML(t, filepath.Join(home, "global.yaml"), "todo: [unclosed\n")

	_, err := LoadFromPaths(context.Background(), "", global)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read global config")
}

func TestLoad_UsesMitHome(t *testing.T) {
	home := isolate(t)
	writeYAML(t, filepath.Join(home, constants.MitHome, constants.ConfigFileName), "list:\n  days: 5\n")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.List.Days)
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	days := 0
	cfg := DefaultConfig()
	cfg.List.Days = 9

	got, err := applyOverrides(cfg, Overrides{TodoFile: "/tmp/other.txt", Days: &days})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.txt", got.Todo.File)
	assert.Equal(t, 0, got.List.Days)

	negative := -2
	_, err = applyOverrides(DefaultConfig(), Overrides{Days: &negative})
	require.ErrorIs(t, err, errors.ErrConfigInvalid)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Validate(nil), errors.ErrConfigNil)
	require.NoError(t, Validate(DefaultConfig()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty file", func(c *Config) { c.Todo.File = "" }},
		{"negative days", func(c *Config) { c.List.Days = -1 }},
		{"zero size", func(c *Config) { c.Log.MaxSizeMB = 0 }},
		{"zero backups", func(c *Config) { c.Log.MaxBackups = 0 }},
		{"zero age", func(c *Config) { c.Log.MaxAge = 0 }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tc.mutate(cfg)
			require.ErrorIs(t, Validate(cfg), errors.ErrConfigInvalid)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "todo.txt"), ExpandHome("~/todo.txt"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/abs/todo.txt", ExpandHome("/abs/todo.txt"))
	assert.Equal(t, "~user/todo.txt", ExpandHome("~user/todo.txt"))
}

func TestPaths(t *testing.T) {
	home := isolate(t)

	dir, err := GlobalConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, constants.MitHome), dir)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)

	logPath, err := LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "logs", "mit.log"), logPath)

	assert.Equal(t, filepath.Join(".mit", "config.yaml"), ProjectConfigPath())
}
