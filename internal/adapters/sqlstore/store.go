// Package sqlstore contains database/sql implementations of the store ports.
// Queries are built with squirrel so one adapter serves SQLite and PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/example/hive/internal/db"
	"github.com/example/hive/internal/ports/secondary"
)

// Store implements secondary.StoreContext over a *sql.DB.
type Store struct {
	db       *sql.DB
	hives    *HiveRepository
	sections *SectionRepository
	audit    *AuditLogRepository
}

// NewStore creates a Store for a database opened with the given driver name.
func NewStore(conn *sql.DB, driver string) *Store {
	builder := sq.StatementBuilder.PlaceholderFormat(db.Placeholder(driver)).RunWith(conn)
	return &Store{
		db:       conn,
		hives:    NewHiveRepository(builder),
		sections: NewSectionRepository(builder),
		audit:    NewAuditLogRepository(builder),
	}
}

// Hives returns the hive repository.
func (s *Store) Hives() secondary.HiveRepository { return s.hives }

// Sections returns the section repository.
func (s *Store) Sections() secondary.SectionRepository { return s.sections }

// AuditLog returns the audit log writer.
func (s *Store) AuditLog() secondary.LogWriter { return s.audit }

// AuditEntries exposes audit history reads.
func (s *Store) AuditEntries() *AuditLogRepository { return s.audit }

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// formatTime renders a nullable timestamp as RFC3339.
func formatTime(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.UTC().Format(time.RFC3339)
}

// findIDByCode looks up the row holding code in table.
func findIDByCode(ctx context.Context, builder sq.StatementBuilderType, table, code string) (int, bool, error) {
	var id int
	err := builder.Select("id").From(table).Where(sq.Eq{"code": code}).Limit(1).
		QueryRowContext(ctx).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up code in %s: %w", table, err)
	}
	return id, true, nil
}

// setStatus updates the soft-delete flag of a row in table.
func setStatus(ctx context.Context, builder sq.StatementBuilderType, table string, id int, isDeleted bool, updatedBy string) error {
	result, err := builder.Update(table).
		Set("is_deleted", isDeleted).
		Set("last_updated_by", updatedBy).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set status in %s: %w", table, err)
	}
	return requireRow(result, table, id)
}

// deleteRow removes a row from table.
func deleteRow(ctx context.Context, builder sq.StatementBuilderType, table string, id int) error {
	result, err := builder.Delete(table).Where(sq.Eq{"id": id}).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return requireRow(result, table, id)
}

func requireRow(result sql.Result, table string, id int) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("row %d not found in %s", id, table)
	}
	return nil
}

var _ secondary.StoreContext = (*Store)(nil)
