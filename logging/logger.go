// Package logging provides structured logging configuration using log/slog.
//
// This package carries a processing batch ID through context so that every
// log entry emitted while a table is being processed can be correlated with
// the batch that produced it.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

const ctxKeyBatchID contextKey = "batch_id"

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Use "json" format in production for machine parsing (ELK, CloudWatch, etc.)
// Use "text" format in development for human readability.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// ContextWithBatchID stores a processing batch ID in the context.
// The engine assigns one per Process call.
func ContextWithBatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyBatchID, id)
}

// BatchIDFromContext extracts the batch ID from the context, if set.
func BatchIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyBatchID).(string); ok {
		return v
	}
	return ""
}

// FromContext returns a logger enriched with processing context.
//
// When the context carries a batch ID, the returned logger automatically
// includes batch_id in all log entries, enabling correlation of every entry
// for a single processing pass.
//
// Usage:
//
//	logger := logging.FromContext(ctx)
//	logger.Info("row skipped", "row", n)
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if id := BatchIDFromContext(ctx); id != "" {
		logger = logger.With("batch_id", id)
	}

	return logger
}

// WithFields returns a logger with additional structured fields.
//
// This is useful for creating operation-specific loggers that carry
// consistent context through a multi-step process.
//
// Usage:
//
//	batchLogger := logging.WithFields(ctx,
//	    "project", project,
//	    "module", module,
//	)
//	batchLogger.Info("processing started")
//	// ... later ...
//	batchLogger.Info("processing completed", "rows", n)
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}
