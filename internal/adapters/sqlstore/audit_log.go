package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/example/hive/internal/ctxutil"
	"github.com/example/hive/internal/ports/secondary"
)

const auditLogTable = "audit_log"

// AuditLogRepository implements secondary.LogWriter and reads entries back.
type AuditLogRepository struct {
	builder sq.StatementBuilderType
}

// NewAuditLogRepository creates a new audit log repository.
func NewAuditLogRepository(builder sq.StatementBuilderType) *AuditLogRepository {
	return &AuditLogRepository{builder: builder}
}

// LogCreate logs a create operation for an entity.
func (r *AuditLogRepository) LogCreate(ctx context.Context, entityType string, entityID int) error {
	return r.write(ctx, entityType, entityID, "create", "", "", "")
}

// LogUpdate logs an update operation for an entity field.
func (r *AuditLogRepository) LogUpdate(ctx context.Context, entityType string, entityID int, fieldName, oldValue, newValue string) error {
	return r.write(ctx, entityType, entityID, "update", fieldName, oldValue, newValue)
}

// LogDelete logs a delete operation for an entity.
func (r *AuditLogRepository) LogDelete(ctx context.Context, entityType string, entityID int) error {
	return r.write(ctx, entityType, entityID, "delete", "", "", "")
}

func (r *AuditLogRepository) write(ctx context.Context, entityType string, entityID int, action, fieldName, oldValue, newValue string) error {
	_, err := r.builder.Insert(auditLogTable).
		Columns("id", "actor_id", "entity_type", "entity_id", "action", "field_name", "old_value", "new_value").
		Values(uuid.NewString(), ctxutil.ActorFromContext(ctx), entityType, entityID, action, fieldName, oldValue, newValue).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

// ListForEntity returns the audit history of one entity, oldest first.
func (r *AuditLogRepository) ListForEntity(ctx context.Context, entityType string, entityID int) ([]secondary.AuditEntry, error) {
	rows, err := r.builder.
		Select("id", "actor_id", "entity_type", "entity_id", "action", "field_name", "old_value", "new_value", "created_at").
		From(auditLogTable).
		Where(sq.Eq{"entity_type": entityType, "entity_id": entityID}).
		OrderBy("created_at ASC", "id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []secondary.AuditEntry
	for rows.Next() {
		var (
			e         secondary.AuditEntry
			createdAt sql.NullTime
		)
		if err := rows.Scan(&e.ID, &e.ActorID, &e.EntityType, &e.EntityID, &e.Action, &e.FieldName, &e.OldValue, &e.NewValue, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		e.CreatedAt = formatTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit entries: %w", err)
	}
	return entries, nil
}

var _ secondary.LogWriter = (*AuditLogRepository)(nil)
