package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/mit/internal/constants"
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Todo: TodoConfig{
			File: DefaultTodoFile(),
		},
		Log: LogConfig{
			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAge:     constants.LogMaxAge,
			Compress:   constants.LogCompress,
		},
	}
}

// setDefaults registers DefaultConfig on v. Keys must match the mapstructure
// tags.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("todo.file", d.Todo.File)
	v.SetDefault("todo.date_on_add", d.Todo.DateOnAdd)

	v.SetDefault("list.days", d.List.Days)

	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge.String())
	v.SetDefault("log.compress", d.Log.Compress)
}
