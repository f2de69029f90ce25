package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/hive/internal/config"
	"github.com/example/hive/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var driver, dsn string
	var seed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize hive configuration and database",
		Long: `Write .hive/config.yaml and bring the database schema up to date.

Examples:
  hive init
  hive init --driver pgx --dsn postgres://hive@localhost/hive
  hive init --seed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.Load(configDir)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("driver") {
				cfg.Driver = driver
				cfg.DSN = ""
			}
			if dsn != "" {
				cfg.DSN = dsn
			}
			if cfg.Driver == db.DriverSQLite && cfg.DSN == "" {
				if cfg.DSN, err = db.DefaultPath(); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Driver == db.DriverPostgres && cfg.DSN == "" {
				return fmt.Errorf("--dsn is required for driver %s", db.DriverPostgres)
			}

			if err := config.Save(configDir, cfg); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ Config written to %s\n", config.Path(configDir))

			if cfg.Driver == config.DriverMemory {
				fmt.Fprintln(out, "✓ Using in-memory store, nothing to initialize")
				return nil
			}

			ctx := NewContext()
			conn, err := db.Open(ctx, cfg.Driver, cfg.DSN)
			if err != nil {
				return err
			}
			defer conn.Close()

			ver, err := db.CurrentVersion(ctx, conn)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ Database initialized (%s, schema version %d)\n", cfg.Driver, ver)

			if seed {
				if err := db.SeedFixtures(ctx, conn, cfg.Driver); err != nil {
					return fmt.Errorf("failed to seed database: %w", err)
				}
				fmt.Fprintln(out, "✓ Sample hives and sections added")
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  hive hive create HV001 --name \"Main store\"")
			fmt.Fprintln(out, "  hive serve")

			return nil
		},
	}

	cmd.Flags().StringVar(&driver, "driver", "", "Database driver: sqlite3, pgx or memory")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Database DSN (file path for sqlite3)")
	cmd.Flags().BoolVar(&seed, "seed", false, "Insert sample hives and sections")

	return cmd
}
