package intbitset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with intbitset-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName adds a set name field to the logger (useful for tagging
// index terms or collections).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("set", name),
	}
}

// LogResize logs a storage growth.
func (l *Logger) LogResize(oldWords, newWords int) {
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "bitset resized",
		"old_words", oldWords,
		"new_words", newWords,
	)
}

// LogDecode logs a buffer decode.
func (l *Logger) LogDecode(length int, err error) {
	ctx := context.Background()
	if err != nil {
		l.WarnContext(ctx, "bitset decode failed",
			"bytes", length,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "bitset decoded",
			"bytes", length,
		)
	}
}
