// Package logging builds the application's slog loggers and carries them
// through request contexts.
package logging

import (
	"context"
	"log/slog"
	"os"

	"newsradar/internal/handler/http/requestid"
)

type loggerKey struct{}

// envLevel maps LOG_LEVEL to a slog level, defaulting to info.
func envLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func handlerOptions() *slog.HandlerOptions {
	level := envLevel()
	return &slog.HandlerOptions{
		Level: level,
		// Source locations are only worth the cost when debugging.
		AddSource: level <= slog.LevelDebug,
	}
}

// NewLogger creates a JSON logger for production output. LOG_LEVEL selects
// the level: debug, info, warn, error.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, handlerOptions()))
}

// NewTextLogger creates a human-readable logger for local development.
func NewTextLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, handlerOptions()))
}

// WithRequestID returns logger annotated with the request ID from ctx, or
// logger unchanged when the context carries none.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := requestid.FromContext(ctx); id != "" {
		return logger.With("request_id", id)
	}
	return logger
}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext retrieves the context's logger, falling back to slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
