// Package logx builds the slog loggers used across the firmware.
package logx

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps "debug", "info", "warn" and "error" to a level; anything
// else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Component tags l with a component name; a nil l yields a discarding logger.
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With("component", name)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger { return New(io.Discard, slog.LevelError) }
