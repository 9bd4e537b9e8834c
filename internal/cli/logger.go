// Package cli provides the command-line interface for mit.
package cli

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/mrz1836/mit/internal/config"
	"github.com/mrz1836/mit/internal/logging"
)

// logFileWriter is kept for CloseLogFile at shutdown.
//
//nolint:gochecknoglobals // needed for cleanup
var (
	logFileWriter   io.WriteCloser
	logFileWriterMu sync.Mutex
)

// zerologConfigOnce ensures zerolog global settings are configured exactly once.
var zerologConfigOnce sync.Once //nolint:gochecknoglobals // one-time configuration

func configureZerologGlobals() {
	zerologConfigOnce.Do(func() {
		zerolog.TimestampFieldName = "ts"
		zerolog.DurationFieldUnit = time.Millisecond
	})
}

// InitLogger builds the CLI logger.
//
// Levels: verbose=debug, quiet=warn, info otherwise. The console gets a
// human-readable writer on a TTY and JSON on stderr otherwise. Everything is
// also written, redacted, to the rotating file at logPath; if that file
// cannot be opened the logger continues console-only.
func InitLogger(verbose, quiet bool, logPath string, cfg config.LogConfig) zerolog.Logger {
	configureZerologGlobals()

	writer := selectOutput()
	if logPath != "" {
		fw, err := logging.OpenFile(logPath, logging.Rotation{
			MaxSizeMB:  cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		if err == nil {
			setLogFile(fw)
			writer = zerolog.MultiLevelWriter(writer, fw)
		}
	}

	return buildLogger(verbose, quiet, writer)
}

// InitLoggerWithWriter builds the CLI logger on w only. Used by tests.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	configureZerologGlobals()
	return buildLogger(verbose, quiet, w)
}

func buildLogger(verbose, quiet bool, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(selectLevel(verbose, quiet)).
		Hook(logging.NewSensitiveDataHook()).
		With().Timestamp().Logger()
}

func setLogFile(w io.WriteCloser) {
	logFileWriterMu.Lock()
	defer logFileWriterMu.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
	}
	logFileWriter = w
}

// CloseLogFile closes the rotating log file if one was opened.
func CloseLogFile() {
	logFileWriterMu.Lock()
	defer logFileWriterMu.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}
