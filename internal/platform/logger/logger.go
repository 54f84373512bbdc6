// Package logger provides structured logging for the application using
// Go's standard library log/slog package.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/newshub/newshub/internal/config"
)

// contextKey is the type for context keys used by this package.
type contextKey struct{}

// loggerKey is the context key under which a request-scoped logger lives.
var loggerKey = contextKey{}

// Setup initializes the application's logging system from the server
// configuration. Production uses a JSON handler; the "text" format swaps
// in a tint handler for readable local development output. The returned
// logger is also installed as the slog default.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	var handler slog.Handler
	switch cfg.LogFormat {
	case "text":
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log, nil
}

// WithLogger returns a context carrying the given logger. Handlers put a
// request-scoped logger (with trace ID attached) into the context so the
// layers below log with the same correlation fields.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger from the context, or nil if none was
// attached.
func FromContext(ctx context.Context) *slog.Logger {
	log, _ := ctx.Value(loggerKey).(*slog.Logger)
	return log
}

// FromContextOrDefault retrieves the logger from the context, falling
// back to the provided default.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log := FromContext(ctx); log != nil {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
