// Package ctxutil provides context helpers shared by commands.
package ctxutil

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Canceled returns the context error once ctx is done, nil otherwise.
// Blocking operations call it at their entry points.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}

// WithInterrupt returns a context that is canceled on SIGINT or SIGTERM.
// Call stop to release the signal registration.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
