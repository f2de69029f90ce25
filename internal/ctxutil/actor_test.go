package ctxutil

import (
	"context"
	"testing"
)

func TestActorFromContext(t *testing.T) {
	ctx := context.Background()

	if got := ActorFromContext(ctx); got != "" {
		t.Errorf("expected empty actor, got %q", got)
	}

	ctx = WithActorID(ctx, "alice")
	if got := ActorFromContext(ctx); got != "alice" {
		t.Errorf("expected 'alice', got %q", got)
	}
}

func TestActorOrDefault(t *testing.T) {
	ctx := context.Background()

	if got := ActorOrDefault(ctx, "system"); got != "system" {
		t.Errorf("expected fallback 'system', got %q", got)
	}
	if got := ActorOrDefault(WithActorID(ctx, "bob"), "system"); got != "bob" {
		t.Errorf("expected 'bob', got %q", got)
	}
	if got := ActorOrDefault(WithActorID(ctx, ""), "system"); got != "system" {
		t.Errorf("expected fallback for empty actor, got %q", got)
	}
}
