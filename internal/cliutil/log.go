// Package cliutil provides the logging and color-output helpers shared by
// cmd/stencilgraph's commands: a charmbracelet/log logger with timestamp
// formatting, and a small palette of lipgloss styles for status lines.
package cliutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w at the given level, timestamped
// "HH:MM:SS.hh" (hundredths of a second).
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Discard returns a logger that drops everything, used when a caller
// doesn't supply one.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
