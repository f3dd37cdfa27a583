//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext cancels an in-flight render or backup on Ctrl-C.
// Windows has no SIGTERM to watch.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
