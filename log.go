package notheme

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var slogCtxKey = ctxKey{}

// logger returns the logger attached to ctx with LoggingContext, or one that
// discards everything.
func logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(slogCtxKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// LoggingContext returns a copy of ctx carrying logger. Renderers log to it;
// without one, nothing is logged.
func LoggingContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, slogCtxKey, logger)
}
