// Package sqlstore_test contains integration tests for the SQL store.
//
// This file is the single point where the database schema is loaded for tests.
// setupTestDB uses db.GetSchemaSQL() so tests run against the authoritative
// schema. Do not hardcode CREATE TABLE statements in test files.
package sqlstore_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/hive/internal/adapters/sqlstore"
	"github.com/example/hive/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Each :memory: connection is its own database.
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// setupTestStore wraps a fresh test database in a Store.
func setupTestStore(t *testing.T) (*sqlstore.Store, *sql.DB) {
	t.Helper()
	testDB := setupTestDB(t)
	return sqlstore.NewStore(testDB, db.DriverSQLite), testDB
}

// seedHive inserts a test hive with an explicit ID.
func seedHive(t *testing.T, testDB *sql.DB, id int, code string, isDeleted bool) {
	t.Helper()
	_, err := testDB.Exec("INSERT INTO store_hives (id, code, name, is_deleted) VALUES (?, ?, ?, ?)",
		id, code, "Hive "+code, isDeleted)
	if err != nil {
		t.Fatalf("failed to seed hive: %v", err)
	}
}

// seedSection inserts a test section with an explicit ID.
func seedSection(t *testing.T, testDB *sql.DB, id, hiveID int, code string, isDeleted bool) {
	t.Helper()
	_, err := testDB.Exec("INSERT INTO store_hive_sections (id, store_hive_id, code, name, is_deleted) VALUES (?, ?, ?, ?, ?)",
		id, hiveID, code, "Section "+code, isDeleted)
	if err != nil {
		t.Fatalf("failed to seed section: %v", err)
	}
}
