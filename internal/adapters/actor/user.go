// Package actor resolves the calling user for the services.
package actor

import (
	"context"

	"github.com/example/hive/internal/ctxutil"
	"github.com/example/hive/internal/ports/secondary"
)

// ContextUser reads the actor from the request context, falling back to a
// configured default when the caller did not identify itself.
type ContextUser struct {
	fallback string
}

// NewContextUser creates a ContextUser with the given fallback actor.
func NewContextUser(fallback string) *ContextUser {
	return &ContextUser{fallback: fallback}
}

// UserID returns the actor for ctx. The value is opaque.
func (u *ContextUser) UserID(ctx context.Context) string {
	return ctxutil.ActorOrDefault(ctx, u.fallback)
}

var _ secondary.UserContext = (*ContextUser)(nil)
