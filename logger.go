package xorgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with xorgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCount adds a count (requested neighbor count) field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithFarms adds a farms (point set size) field to the logger.
func (l *Logger) WithFarms(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("farms", n),
	}
}

// LogClosest logs a closest-farms lookup.
func (l *Logger) LogClosest(count, returned int) {
	l.Debug("closest farms resolved",
		"count", count,
		"returned", returned,
	)
}

// LogReverse logs a reverse lookup. A missing witness is an expected
// outcome, not an error.
func (l *Logger) LogReverse(listLen int, found bool) {
	if found {
		l.Debug("position reconstructed",
			"list_len", listLen,
		)
	} else {
		l.Debug("no position satisfies farm list",
			"list_len", listLen,
		)
	}
}
