package context

import (
	"context"
	"io"
	"log/slog"

	"github.com/randalmurphal/paramset"
)

// serviceContextKey is a private type for context keys to avoid collisions
type serviceContextKey string

// Context keys for paramset services
const (
	paramsKey serviceContextKey = "paramset.params"
	loggerKey serviceContextKey = "paramset.logger"
)

// WithParams adds a read-only parameter view to the context
func WithParams(ctx context.Context, params paramset.Reader) context.Context {
	return context.WithValue(ctx, paramsKey, params)
}

// Params extracts the parameter view from context
func Params(ctx context.Context) paramset.Reader {
	if params, ok := ctx.Value(paramsKey).(paramset.Reader); ok {
		return params
	}
	return nil
}

// MustParams extracts the parameter view or panics
func MustParams(ctx context.Context) paramset.Reader {
	params := Params(ctx)
	if params == nil {
		panic("paramset/context: paramset.Reader not found in context")
	}
	return params
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger extracts the logger from context.
// Returns nil if not set - callers should fall back to GetLogger.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return nil
}

// GetLogger returns the logger from context, or one that discards everything.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger := Logger(ctx); logger != nil {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
