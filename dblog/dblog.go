// Package dblog wraps log/slog with the level/format choice this project's
// CLI exposes. It has no state beyond one *slog.Logger; nothing in the
// storage core imports slog directly.
package dblog

import (
	"io"
	"log/slog"
)

// Level is the subset of slog levels the CLI accepts.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Logger is a thin alias so callers depend on this package, not slog,
// letting the handler/level policy live in one place.
type Logger = slog.Logger

// New builds a logger writing to w with the given level and format.
func New(w io.Writer, level Level, format Format) *Logger {
	opts := &slog.HandlerOptions{Level: toSlogLevel(level)}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops everything, for tests that don't
// care about log output.
func Discard() *Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func toSlogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
