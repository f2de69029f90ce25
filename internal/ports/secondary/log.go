package secondary

import "context"

// LogWriter defines the interface for writing audit log entries.
// Implementations extract the actor from context.
type LogWriter interface {
	// LogCreate logs a create operation for an entity.
	LogCreate(ctx context.Context, entityType string, entityID int) error

	// LogUpdate logs an update operation for an entity field.
	// fieldName, oldValue, newValue describe what changed.
	LogUpdate(ctx context.Context, entityType string, entityID int, fieldName, oldValue, newValue string) error

	// LogDelete logs a delete operation for an entity.
	LogDelete(ctx context.Context, entityType string, entityID int) error
}

// AuditEntry is a single audit log row.
type AuditEntry struct {
	ID         string
	ActorID    string
	EntityType string
	EntityID   int
	Action     string
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}
