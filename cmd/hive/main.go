package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hive/internal/cli"
	"github.com/example/hive/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "hive",
		Short:   "hive - manage storage hives and their sections",
		Version: version.String(),
		Long: `hive keeps a register of storage locations (hives) and the sections
inside them. Records are soft-deleted first and can only be purged afterwards.`,
		PersistentPreRunE: cli.Bootstrap,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	cli.RegisterGlobalFlags(rootCmd)

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.HiveCmd())
	rootCmd.AddCommand(cli.SectionCmd())

	// Server
	rootCmd.AddCommand(cli.ServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
