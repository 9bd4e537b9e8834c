// Package config provides mit's layered configuration.
//
// Sources, highest precedence first:
//  1. CLI flags (applied by LoadWithOverrides)
//  2. Environment variables (MIT_* prefix; TODO_FILE and TODO_DIR as fallbacks)
//  3. Project config (.mit/config.yaml)
//  4. Global config (~/.mit/config.yaml)
//  5. Built-in defaults
//
// This package may import internal/constants and internal/errors only.
package config

import "time"

// Config is the root configuration.
type Config struct {
	// Todo locates and shapes the todo file.
	Todo TodoConfig `yaml:"todo" json:"todo" mapstructure:"todo"`

	// List tunes the MIT report.
	List ListConfig `yaml:"list" json:"list" mapstructure:"list"`

	// Log configures the rotating log file.
	Log LogConfig `yaml:"log" json:"log" mapstructure:"log"`
}

// TodoConfig locates the todo file.
type TodoConfig struct {
	// File is the path of todo.txt. A leading ~/ is expanded.
	File string `yaml:"file" json:"file" mapstructure:"file"`

	// DateOnAdd prefixes new MITs with today's date, like todo.sh -t.
	DateOnAdd bool `yaml:"date_on_add" json:"date_on_add" mapstructure:"date_on_add"`
}

// ListConfig tunes the report.
type ListConfig struct {
	// Days hides Day sections further than this many days out. 0 shows all.
	Days int `yaml:"days" json:"days" mapstructure:"days"`
}

// LogConfig configures log rotation.
type LogConfig struct {
	MaxSizeMB  int           `yaml:"max_size_mb" json:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int           `yaml:"max_backups" json:"max_backups" mapstructure:"max_backups"`
	MaxAge     time.Duration `yaml:"max_age" json:"max_age" mapstructure:"max_age"`
	Compress   bool          `yaml:"compress" json:"compress" mapstructure:"compress"`
}
