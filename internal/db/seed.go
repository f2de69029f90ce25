package db

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Placeholder returns the squirrel placeholder format for a driver.
func Placeholder(driver string) sq.PlaceholderFormat {
	if driver == DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// SeedFixtures populates an empty database with development fixtures.
func SeedFixtures(ctx context.Context, conn *sql.DB, driver string) error {
	builder := sq.StatementBuilder.PlaceholderFormat(Placeholder(driver)).RunWith(conn)

	hives := []struct{ code, name, address string }{
		{"NORTH", "North Warehouse", "12 Harbour Road"},
		{"SOUTH", "South Depot", "4 Mill Lane"},
	}
	hiveIDs := make(map[string]int, len(hives))
	for _, h := range hives {
		var id int
		err := builder.Insert("store_hives").
			Columns("code", "name", "address", "created_by", "last_updated_by").
			Values(h.code, h.name, h.address, "seed", "seed").
			Suffix("RETURNING id").
			QueryRowContext(ctx).
			Scan(&id)
		if err != nil {
			return fmt.Errorf("seed hives: %w", err)
		}
		hiveIDs[h.code] = id
	}

	sections := []struct{ hive, code, name string }{
		{"NORTH", "N-A01", "Aisle 1"},
		{"NORTH", "N-A02", "Aisle 2"},
		{"SOUTH", "S-COL", "Cold Room"},
	}
	for _, s := range sections {
		_, err := builder.Insert("store_hive_sections").
			Columns("store_hive_id", "code", "name", "created_by", "last_updated_by").
			Values(hiveIDs[s.hive], s.code, s.name, "seed", "seed").
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("seed sections: %w", err)
		}
	}

	return nil
}
