package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hive/internal/wire"
)

// HiveCmd returns the hive command
func HiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hive",
		Short: "Manage hives (storage locations)",
		Long: `Create, inspect and retire hives.

A hive is soft-deleted with "delete" and brought back with "restore".
Only a soft-deleted hive can be purged; purging also removes its sections.`,
	}

	cmd.AddCommand(hiveListCmd())
	cmd.AddCommand(hiveShowCmd())
	cmd.AddCommand(hiveCreateCmd())
	cmd.AddCommand(hiveUpdateCmd())
	cmd.AddCommand(hiveDeleteCmd())
	cmd.AddCommand(hiveRestoreCmd())
	cmd.AddCommand(hivePurgeCmd())
	cmd.AddCommand(hiveSectionsCmd())

	return cmd
}

func hiveListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all hives, soft-deleted ones included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.HiveAdapterWithOutput(cmd.OutOrStdout()).List(NewContext())
		},
	}
}

func hiveShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [hive-id]",
		Short: "Show hive details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("hive", args[0])
			if err != nil {
				return err
			}
			return wire.HiveAdapterWithOutput(cmd.OutOrStdout()).Show(NewContext(), id)
		},
	}
}

func hiveCreateCmd() *cobra.Command {
	var name, address string

	cmd := &cobra.Command{
		Use:   "create [code]",
		Short: "Create a new hive",
		Long: `Create a new hive. The code must not be used by any other hive.

Examples:
  hive hive create HV001 --name "North warehouse"
  hive hive create HV002 --name "Dock" --address "12 Harbour Rd"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.HiveAdapterWithOutput(cmd.OutOrStdout()).Create(NewContext(), args[0], name, address)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Hive name")
	cmd.Flags().StringVarP(&address, "address", "a", "", "Hive address")
	cmd.MarkFlagRequired("name")

	return cmd
}

func hiveUpdateCmd() *cobra.Command {
	var code, name, address string

	cmd := &cobra.Command{
		Use:   "update [hive-id]",
		Short: "Update hive code, name or address",
		Long: `Update a hive. Flags that are not given keep their current value.

Examples:
  hive hive update 1 --name "North warehouse"
  hive hive update 1 --address ""    # clear the address`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("hive", args[0])
			if err != nil {
				return err
			}
			var newAddress *string
			if cmd.Flags().Changed("address") {
				newAddress = &address
			}
			return wire.HiveAdapterWithOutput(cmd.OutOrStdout()).Update(NewContext(), id, code, name, newAddress)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "New code (omit to keep)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "New name (omit to keep)")
	cmd.Flags().StringVarP(&address, "address", "a", "", `New address (omit to keep, "" to clear)`)

	return cmd
}

func hiveDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [hive-id]",
		Short: "Soft-delete a hive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("hive", args[0])
			if err != nil {
				return err
			}
			return wire.HiveAdapterWithOutput(cmd.OutOrStdout()).SetStatus(NewContext(), id, true)
		},
	}
}

func hiveRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [hive-id]",
		Short: "Restore a soft-deleted hive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("hive", args[0])
			if err != nil {
				return err
			}
			return wire.HiveAdapterWithOutput(cmd.OutOrStdout()).SetStatus(NewContext(), id, false)
		},
	}
}

func hivePurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge [hive-id]",
		Short: "Permanently remove a soft-deleted hive and its sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("hive", args[0])
			if err != nil {
				return err
			}
			return wire.HiveAdapterWithOutput(cmd.OutOrStdout()).Purge(NewContext(), id)
		},
	}
}

func hiveSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections [hive-id]",
		Short: "List the sections of a hive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("hive", args[0])
			if err != nil {
				return err
			}
			return wire.HiveAdapterWithOutput(cmd.OutOrStdout()).Sections(NewContext(), id)
		},
	}
}
