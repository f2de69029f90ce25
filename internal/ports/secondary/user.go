package secondary

import "context"

// UserContext identifies the caller of a service operation.
// The value is opaque to the application: it is stamped on records, never interpreted.
type UserContext interface {
	// UserID returns the caller identity for the request carried by ctx.
	UserID(ctx context.Context) string
}
