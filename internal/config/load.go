package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/mit/internal/constants"
	"github.com/mrz1836/mit/internal/errors"
)

// newViperInstance creates a Viper with defaults and environment bindings.
// todo.file also answers to todo.sh's TODO_FILE.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("todo.file", constants.EnvPrefix+"_TODO_FILE", constants.EnvTodoFile)
	return v
}

func isConfigNotFoundError(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound)
}

// Load reads configuration from every source in precedence order. Missing
// config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	global, err := GlobalConfigPath()
	if err != nil {
		global = ""
	}
	return LoadFromPaths(ctx, ProjectConfigPath(), global)
}

// LoadFromPaths loads the global then the project config file, either of
// which may be empty or missing, then environment overrides.
func LoadFromPaths(ctx context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if err := mergeFile(v, globalConfigPath); err != nil {
		return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
	}
	if err := mergeFile(v, projectConfigPath); err != nil {
		return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "config").
		Str("todo.file", cfg.Todo.File).
		Int("list.days", cfg.List.Days).
		Str("config", v.ConfigFileUsed()).
		Msg("configuration loaded")

	return cfg, nil
}

// mergeFile merges the YAML file at path into v. Empty and missing paths are
// skipped.
func mergeFile(v *viper.Viper, path string) error {
	if path == "" || !fileExists(path) {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return err
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	cfg.Todo.File = ExpandHome(cfg.Todo.File)
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Overrides carries CLI flag values. Empty fields leave the loaded value.
type Overrides struct {
	TodoFile string
	// Days overrides list.days when non-nil, so an explicit 0 is honored.
	Days *int
}

// LoadWithOverrides loads configuration and applies CLI flag overrides on
// top.
func LoadWithOverrides(ctx context.Context, overrides Overrides) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	return applyOverrides(cfg, overrides)
}

func applyOverrides(cfg *Config, o Overrides) (*Config, error) {
	if o.TodoFile != "" {
		cfg.Todo.File = ExpandHome(o.TodoFile)
	}
	if o.Days != nil {
		cfg.List.Days = *o.Days
	}
	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return cfg, nil
}

// viperDecoderOption decodes durations such as "720h" from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
