//go:build windows

package main

import "os"

// shutdownSignals stop serve and abort a render batch.
// Windows only delivers os.Interrupt.
var shutdownSignals = []os.Signal{os.Interrupt}
