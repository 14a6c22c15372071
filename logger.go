package kmeans

import (
	"context"
	"log/slog"
	"os"
	"time"
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
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

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithJob adds a job index field to the logger (used by FitAll).
func (l *Logger) WithJob(job int) *Logger {
	return &Logger{
		Logger: l.Logger.With("job", job),
	}
}

// LogIteration logs a completed Lloyd iteration.
func (l *Logger) LogIteration(ctx context.Context, iteration int, converged bool, d time.Duration) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"converged", converged,
		"duration", d,
	)
}

// LogFit logs the outcome of a run.
func (l *Logger) LogFit(ctx context.Context, res *Result, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"duration", d,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "fit completed",
		"state", res.State.String(),
		"iterations", res.Iterations,
		"inertia", res.Inertia,
		"duration", d,
	)
}
