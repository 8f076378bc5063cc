package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithCheckoutID attaches the session correlation key to the contextual
// logger so every line of a flow carries it.
func WithCheckoutID(ctx context.Context, checkoutID string) context.Context {
	l := FromContext(ctx)
	return WithContext(ctx, l.With("checkout_id", checkoutID))
}
