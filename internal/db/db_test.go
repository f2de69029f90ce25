package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "hive.db")

	conn, err := Open(ctx, DriverSQLite, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer conn.Close()

	version, err := CurrentVersion(ctx, conn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != LatestVersion() {
		t.Errorf("expected version %d, got %d", LatestVersion(), version)
	}

	// Reopening must not reapply migrations.
	conn.Close()
	conn, err = Open(ctx, DriverSQLite, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer conn.Close()
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "x")
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestSchemaFor(t *testing.T) {
	tests := []struct {
		driver  string
		wantErr bool
	}{
		{DriverSQLite, false},
		{DriverPostgres, false},
		{"memory", true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			schema, err := SchemaFor(tt.driver)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SchemaFor(%q) error = %v, wantErr %v", tt.driver, err, tt.wantErr)
			}
			if !tt.wantErr && schema == "" {
				t.Error("expected non-empty schema")
			}
		})
	}
}

func TestSeedFixtures(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer conn.Close()

	if err := SeedFixtures(ctx, conn, DriverSQLite); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var hives, sections int
	if err := conn.QueryRow("SELECT COUNT(*) FROM store_hives").Scan(&hives); err != nil {
		t.Fatal(err)
	}
	if err := conn.QueryRow("SELECT COUNT(*) FROM store_hive_sections").Scan(&sections); err != nil {
		t.Fatal(err)
	}
	if hives != 2 || sections != 3 {
		t.Errorf("expected 2 hives and 3 sections, got %d and %d", hives, sections)
	}
}
