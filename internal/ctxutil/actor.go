// Package ctxutil carries the calling actor through a context.Context.
// It has no internal dependencies so any layer may import it.
package ctxutil

import "context"

type actorKey struct{}

// WithActorID returns a context carrying the actor ID.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

// ActorFromContext returns the actor ID from context, or empty string if not set.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok {
		return v
	}
	return ""
}

// ActorOrDefault returns the actor ID from context, falling back to def when unset.
func ActorOrDefault(ctx context.Context, def string) string {
	if actor := ActorFromContext(ctx); actor != "" {
		return actor
	}
	return def
}
