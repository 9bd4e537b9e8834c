package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/mit/internal/clock"
	"github.com/mrz1836/mit/internal/config"
	"github.com/mrz1836/mit/internal/errors"
	"github.com/mrz1836/mit/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// options are the process dependencies of a command tree.
type options struct {
	clock      clock.Clock
	loadConfig func(context.Context, config.Overrides) (*config.Config, error)
	// logWriter replaces the console and file log writers when set.
	logWriter io.Writer
	// plain disables styling of report labels.
	plain bool
}

func defaultOptions() options {
	return options{
		clock:      clock.RealClock{},
		loadConfig: config.LoadWithOverrides,
	}
}

const rootLong = `mit keeps Most Important Tasks in a todo.txt file. An MIT is an ordinary
task line carrying a {period} marker; mit lists them grouped by year, quarter,
month and day, and moves or clears the marker.

Usage:
  mit                       list all MITs
  mit @context              list MITs mentioning @context
  mit not @context          list MITs not mentioning @context
  mit DATE task text        add an MIT due DATE
  mit DATE [@context]       list MITs due exactly DATE
  mit mv ID DATE            move task ID (a line number) to DATE
  mit rm ID                 turn task ID back into a plain task

DATE is one of:
  today, tomorrow           this day or the next
  Nd, Nday(s)               N days from today, e.g. 3d (use -- before -2d)
  mon .. sunday             the next such weekday, never today
  YYYY.MM.DD, YYYY-MM-DD    a day
  jan .. december           the next such month, this one included
  YYYY.MM, YYYYMM           a month
  q1 .. q4                  the next such quarter, this one included
  YYYYqN, YYYY.qN           a quarter
  YYYY                      a year`

// newRootCmd builds the mit command tree.
func newRootCmd(flags *GlobalFlags, info BuildInfo, opts options) *cobra.Command {
	v := viper.New()
	s := &session{flags: flags, opts: opts}

	cmd := &cobra.Command{
		Use:     "mit",
		Short:   "Most Important Tasks for todo.txt",
		Long:    rootLong,
		Version: formatVersion(info),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.dispatch(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd, flags); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}
			return s.start(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flags after the date token belong to the task text.
	cmd.Flags().SetInterspersed(false)

	AddGlobalFlags(cmd, flags)

	AddListCommand(cmd, s)
	AddMoveCommand(cmd, s)
	AddRemoveCommand(cmd, s)
	AddUsageCommand(cmd)
	AddConfigCommand(cmd, s)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command. Errors are printed to stderr in the
// selected output format and returned for the exit code.
func Execute(ctx context.Context, info BuildInfo) error {
	return execute(ctx, info, defaultOptions(), os.Args[1:], os.Stdout, os.Stderr)
}

func execute(ctx context.Context, info BuildInfo, opts options, args []string, stdout, stderr io.Writer) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info, opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		format := flags.Output
		if !IsValidOutputFormat(format) {
			format = OutputText
		}
		tui.NewOutput(stderr, format).Error(tui.FromError(err))
	}
	return err
}
