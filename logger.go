package treedist

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with treedist-specific context.
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

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(m Metric) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", m.String()),
	}
}

// WithTreeCount adds a tree count field to the logger.
func (l *Logger) WithTreeCount(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("trees", n),
	}
}

// LogSnapshotBuild logs a snapshot construction.
func (l *Logger) LogSnapshotBuild(ctx context.Context, index, leafCount, parts int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot build failed",
			"tree", index,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "snapshot built",
			"tree", index,
			"leaves", leafCount,
			"parts", parts,
		)
	}
}

// LogPairwise logs a pairwise matrix computation.
func (l *Logger) LogPairwise(ctx context.Context, metric Metric, trees int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "pairwise computation failed",
			"metric", metric.String(),
			"trees", trees,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "pairwise computation completed",
			"metric", metric.String(),
			"trees", trees,
			"duration", duration,
		)
	}
}
