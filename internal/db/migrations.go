package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Migration is one ordered schema step, with a statement per dialect.
type Migration struct {
	Version  int
	Name     string
	SQLite   string
	Postgres string
}

var migrations = []Migration{
	{
		Version:  1,
		Name:     "create_hives_and_sections",
		SQLite:   sqliteHivesSQL,
		Postgres: postgresHivesSQL,
	},
	{
		Version:  2,
		Name:     "create_audit_log",
		SQLite:   sqliteAuditLogSQL,
		Postgres: postgresAuditLogSQL,
	},
}

// LatestVersion returns the schema version after all migrations.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

// RunMigrations executes all pending migrations.
func RunMigrations(ctx context.Context, conn *sql.DB, driver string) error {
	_, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	current, err := CurrentVersion(ctx, conn)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		stmt := m.SQLite
		if driver == DriverPostgres {
			stmt = m.Postgres
		}

		log.Debug().Int("version", m.Version).Str("name", m.Name).Msg("running migration")

		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", m.Version, err)
		}

		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", m.Version, err)
		}

		insert := "INSERT INTO schema_version (version) VALUES (?)"
		if driver == DriverPostgres {
			insert = "INSERT INTO schema_version (version) VALUES ($1)"
		}
		if _, err := tx.ExecContext(ctx, insert, m.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// CurrentVersion returns the highest applied migration, or 0 on a fresh database.
func CurrentVersion(ctx context.Context, conn *sql.DB) (int, error) {
	var version int
	err := conn.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	return version, nil
}
