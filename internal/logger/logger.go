package logger

import (
	"github.com/fatih/color"
)

// Colorized printing functions for the log levels. These are package-level
// variables holding functions that behave like fmt.Printf, with text colored
// per level.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise is a no-op.
// It is reassigned during Init based on the debug flag.
var Debug = func(format string, a ...any) {}

// Init initializes the logger, enabling or disabling debug output.
// When disabled, Debug is a no-op that silently drops its messages.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
