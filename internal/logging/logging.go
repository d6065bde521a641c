// SPDX-License-Identifier: MPL-2.0

// Package logging configures the shared diagnostic logger.
//
// Diagnostics go to stderr through charmbracelet/log; user-facing command
// output stays on stdout via the styled fmt printing in cmd. The --verbose
// flag switches the level to debug.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the shared diagnostic logger.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// Setup configures the logger level and output. A nil writer keeps stderr.
func Setup(verbose bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}
