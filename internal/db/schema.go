package db

import "fmt"

// SchemaSQL is the complete SQLite schema for fresh installs.
// It is the result of applying every migration in order.
//
// This is the single source of truth for tests: repository tests load it via
// GetSchemaSQL() instead of declaring their own tables, so a column used by an
// adapter but missing here fails with "no such column".
//
// When adding a column or table:
//  1. Add a migration in migrations.go
//  2. Update the matching fragment here
//  3. Run `make test`
const SchemaSQL = sqliteHivesSQL + sqliteAuditLogSQL

// PostgresSchemaSQL is the complete PostgreSQL schema.
const PostgresSchemaSQL = postgresHivesSQL + postgresAuditLogSQL

const sqliteHivesSQL = `
CREATE TABLE IF NOT EXISTS store_hives (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	is_deleted BOOLEAN NOT NULL DEFAULT 0,
	created_by TEXT NOT NULL DEFAULT '',
	last_updated_by TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS store_hive_sections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	store_hive_id INTEGER NOT NULL,
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL DEFAULT '',
	is_deleted BOOLEAN NOT NULL DEFAULT 0,
	created_by TEXT NOT NULL DEFAULT '',
	last_updated_by TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (store_hive_id) REFERENCES store_hives(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_store_hive_sections_hive ON store_hive_sections(store_hive_id);
`

const sqliteAuditLogSQL = `
CREATE TABLE IF NOT EXISTS audit_log (
	id TEXT PRIMARY KEY,
	actor_id TEXT NOT NULL DEFAULT '',
	entity_type TEXT NOT NULL,
	entity_id INTEGER NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'update', 'delete')),
	field_name TEXT NOT NULL DEFAULT '',
	old_value TEXT NOT NULL DEFAULT '',
	new_value TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_audit_log_entity ON audit_log(entity_type, entity_id);
`

const postgresHivesSQL = `
CREATE TABLE IF NOT EXISTS store_hives (
	id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
	created_by TEXT NOT NULL DEFAULT '',
	last_updated_by TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ DEFAULT now(),
	updated_at TIMESTAMPTZ DEFAULT now()
);

CREATE TABLE IF NOT EXISTS store_hive_sections (
	id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	store_hive_id INTEGER NOT NULL REFERENCES store_hives(id) ON DELETE CASCADE,
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL DEFAULT '',
	is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
	created_by TEXT NOT NULL DEFAULT '',
	last_updated_by TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ DEFAULT now(),
	updated_at TIMESTAMPTZ DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_store_hive_sections_hive ON store_hive_sections(store_hive_id);
`

const postgresAuditLogSQL = `
CREATE TABLE IF NOT EXISTS audit_log (
	id TEXT PRIMARY KEY,
	actor_id TEXT NOT NULL DEFAULT '',
	entity_type TEXT NOT NULL,
	entity_id INTEGER NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'update', 'delete')),
	field_name TEXT NOT NULL DEFAULT '',
	old_value TEXT NOT NULL DEFAULT '',
	new_value TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_audit_log_entity ON audit_log(entity_type, entity_id);
`

// GetSchemaSQL returns the authoritative SQLite schema for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}

// SchemaFor returns the complete schema for a driver.
func SchemaFor(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return SchemaSQL, nil
	case DriverPostgres:
		return PostgresSchemaSQL, nil
	default:
		return "", fmt.Errorf("no schema for driver %q", driver)
	}
}
