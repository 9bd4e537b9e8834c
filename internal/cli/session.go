package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/mit/internal/clock"
	"github.com/mrz1836/mit/internal/config"
	"github.com/mrz1836/mit/internal/report"
	"github.com/mrz1836/mit/internal/todotxt"
	"github.com/mrz1836/mit/internal/tui"
)

// session is the state shared by the commands of one invocation. start fills
// it before any RunE runs.
type session struct {
	flags  *GlobalFlags
	opts   options
	cfg    *config.Config
	logger zerolog.Logger
}

// start loads configuration and sets up logging for cmd.
func (s *session) start(cmd *cobra.Command) error {
	ctx := cmd.Context()

	overrides := config.Overrides{TodoFile: s.flags.File}
	if f := cmd.Flags().Lookup("days"); f != nil && f.Changed {
		days, err := cmd.Flags().GetInt("days")
		if err != nil {
			return err
		}
		overrides.Days = &days
	}

	cfg, err := s.opts.loadConfig(ctx, overrides)
	if err != nil {
		return err
	}
	s.cfg = cfg

	if s.opts.logWriter != nil {
		s.logger = InitLoggerWithWriter(s.flags.Verbose, s.flags.Quiet, s.opts.logWriter)
	} else {
		logPath, pathErr := config.LogFilePath()
		if pathErr != nil {
			logPath = ""
		}
		s.logger = InitLogger(s.flags.Verbose, s.flags.Quiet, logPath, cfg.Log)
	}

	s.logger.Debug().
		Str("todo_file", cfg.Todo.File).
		Int("list_days", cfg.List.Days).
		Str("command", cmd.Name()).
		Msg("starting")

	cmd.SetContext(s.logger.WithContext(ctx))
	return nil
}

// now returns the current instant from the session clock.
func (s *session) now() time.Time {
	return s.opts.clock.Now()
}

// today returns midnight of the current day.
func (s *session) today() time.Time {
	return clock.Today(s.opts.clock)
}

func (s *session) output(cmd *cobra.Command) tui.Output {
	return tui.NewOutput(cmd.OutOrStdout(), s.flags.Output)
}

// warn prints msg to stderr so stdout stays parseable with --output json.
func (s *session) warn(cmd *cobra.Command, msg string) {
	tui.NewOutput(cmd.ErrOrStderr(), s.flags.Output).Warning(msg)
}

func (s *session) reportStyles() report.Styles {
	if s.opts.plain {
		return report.PlainStyles()
	}
	tui.CheckNoColor()
	return report.DefaultStyles()
}

func (s *session) openStore(ctx context.Context) (*todotxt.FileStore, error) {
	return todotxt.OpenFile(ctx, s.cfg.Todo.File)
}

// save writes the store back and logs the mutation.
func (s *session) save(ctx context.Context, store *todotxt.FileStore) error {
	if err := store.Save(ctx); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Str("file", store.Path()).Msg("todo file saved")
	return nil
}
