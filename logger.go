package alignedalloc

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with allocator-specific context.
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

// LogAlloc logs an allocation attempt.
func (l *Logger) LogAlloc(strategy string, size, align int, err error) {
	if err != nil {
		l.Error("alloc failed",
			"strategy", strategy,
			"size", size,
			"align", align,
			"error", err,
		)
	} else {
		l.Debug("alloc completed",
			"strategy", strategy,
			"size", size,
			"align", align,
		)
	}
}

// LogFree logs a release.
func (l *Logger) LogFree(strategy string, size int, err error) {
	if err != nil {
		l.Error("free failed",
			"strategy", strategy,
			"size", size,
			"error", err,
		)
	} else {
		l.Debug("free completed",
			"strategy", strategy,
			"size", size,
		)
	}
}
