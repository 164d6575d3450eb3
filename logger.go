package kmeansgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clustering-specific context.
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

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithPoints adds a point count field to the logger.
func (l *Logger) WithPoints(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("points", n),
	}
}

// LogSeed logs a center initialization.
func (l *Logger) LogSeed(ctx context.Context, k, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "seeding failed",
			"k", k,
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "seeding completed",
			"k", k,
			"points", points,
		)
	}
}

// LogAssign logs an assignment pass.
func (l *Logger) LogAssign(ctx context.Context, points, centers int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "assignment failed",
			"points", points,
			"centers", centers,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "assignment completed",
			"points", points,
			"centers", centers,
		)
	}
}

// LogIteration logs a single fit iteration.
func (l *Logger) LogIteration(ctx context.Context, iteration int, shift float64) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"shift", shift,
	)
}

// LogFit logs a completed fit run.
func (l *Logger) LogFit(ctx context.Context, k, iterations int, termination TerminationReason, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"k", k,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "fit completed",
			"k", k,
			"iterations", iterations,
			"termination", termination.String(),
		)
	}
}
