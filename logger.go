package bittersweet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with bittersweet-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
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

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// WithWidth adds a word width field to the logger.
func (l *Logger) WithWidth(width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// WithLaw adds a law name field to the logger.
func (l *Logger) WithLaw(law string) *Logger {
	return &Logger{
		Logger: l.Logger.With("law", law),
	}
}

// LogLaw logs the outcome of checking one law at one width.
func (l *Logger) LogLaw(ctx context.Context, width int, law string, checked uint64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "law check failed",
			"width", width,
			"law", law,
			"checked", checked,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "law check completed",
			"width", width,
			"law", law,
			"checked", checked,
			"elapsed", elapsed,
		)
	}
}

// LogRun logs the outcome of a complete verification run.
func (l *Logger) LogRun(ctx context.Context, laws int, failed int, elapsed time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "verification completed with failures",
			"laws", laws,
			"failed", failed,
			"elapsed", elapsed,
		)
	} else {
		l.InfoContext(ctx, "verification completed",
			"laws", laws,
			"elapsed", elapsed,
		)
	}
}
