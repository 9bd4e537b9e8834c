package config

import (
	"github.com/mrz1836/mit/internal/errors"
)

// Validate reports the first invalid value in cfg:
//   - todo.file must not be empty
//   - list.days must not be negative
//   - log limits must be positive
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if cfg.Todo.File == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "todo.file must not be empty")
	}
	if cfg.List.Days < 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "list.days must not be negative, got %d", cfg.List.Days)
	}
	return validateLogConfig(&cfg.Log)
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg.MaxSizeMB <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "log.max_size_mb must be positive, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "log.max_backups must be positive, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAge <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "log.max_age must be positive, got %s", cfg.MaxAge)
	}
	return nil
}
