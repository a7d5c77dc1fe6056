//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop serve and abort a render batch.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
