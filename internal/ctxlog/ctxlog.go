// Package ctxlog carries the run's slog.Logger through context.Context,
// so deeply nested solver code logs without threading a logger argument
// through every call.
package ctxlog

import (
	"context"
	"log/slog"
)

// ctxKey is unexported so no other package can collide with it.
type ctxKey struct{}

// WithLogger embeds the logger into a derived context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the embedded logger, or the process-wide default
// when the context carries none. Callers never get a nil logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
