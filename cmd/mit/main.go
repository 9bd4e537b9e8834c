// Package main provides the entry point for the mit CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/mit/internal/cli"
	"github.com/mrz1836/mit/internal/ctxutil"
)

// Set via ldflags.
//
//nolint:gochecknoglobals // build metadata
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := ctxutil.WithInterrupt(context.Background())

	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})

	stop()
	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
