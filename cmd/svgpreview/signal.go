package main

import (
	"context"
	"os/signal"
)

// notifyContext derives a context canceled by the first shutdown signal.
// stop releases the signal handler.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
