package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hive/internal/wire"
)

// SectionCmd returns the section command
func SectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage hive sections",
		Long: `Create, inspect and retire sections of a hive.

A section belongs to exactly one hive for its whole life.`,
	}

	cmd.AddCommand(sectionListCmd())
	cmd.AddCommand(sectionShowCmd())
	cmd.AddCommand(sectionCreateCmd())
	cmd.AddCommand(sectionUpdateCmd())
	cmd.AddCommand(sectionDeleteCmd())
	cmd.AddCommand(sectionRestoreCmd())
	cmd.AddCommand(sectionPurgeCmd())

	return cmd
}

func sectionListCmd() *cobra.Command {
	var hive string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sections, optionally of one hive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var hiveID *int
			if cmd.Flags().Changed("hive") {
				id, err := parseID("hive", hive)
				if err != nil {
					return err
				}
				hiveID = &id
			}
			return wire.SectionAdapterWithOutput(cmd.OutOrStdout()).List(NewContext(), hiveID)
		},
	}

	cmd.Flags().StringVar(&hive, "hive", "", "Only list sections of this hive")

	return cmd
}

func sectionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [section-id]",
		Short: "Show section details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("section", args[0])
			if err != nil {
				return err
			}
			return wire.SectionAdapterWithOutput(cmd.OutOrStdout()).Show(NewContext(), id)
		},
	}
}

func sectionCreateCmd() *cobra.Command {
	var hive, name string

	cmd := &cobra.Command{
		Use:   "create [code]",
		Short: "Create a new section in a hive",
		Long: `Create a new section. The code must not be used by any other section.

Examples:
  hive section create SC001 --hive 1 --name "Cold room"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hiveID, err := parseID("hive", hive)
			if err != nil {
				return err
			}
			return wire.SectionAdapterWithOutput(cmd.OutOrStdout()).Create(NewContext(), hiveID, args[0], name)
		},
	}

	cmd.Flags().StringVar(&hive, "hive", "", "Owning hive ID")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Section name")
	cmd.MarkFlagRequired("hive")
	cmd.MarkFlagRequired("name")

	return cmd
}

func sectionUpdateCmd() *cobra.Command {
	var code, name string

	cmd := &cobra.Command{
		Use:   "update [section-id]",
		Short: "Update section code or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("section", args[0])
			if err != nil {
				return err
			}
			return wire.SectionAdapterWithOutput(cmd.OutOrStdout()).Update(NewContext(), id, code, name)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "New code")
	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")

	return cmd
}

func sectionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [section-id]",
		Short: "Soft-delete a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("section", args[0])
			if err != nil {
				return err
			}
			return wire.SectionAdapterWithOutput(cmd.OutOrStdout()).SetStatus(NewContext(), id, true)
		},
	}
}

func sectionRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [section-id]",
		Short: "Restore a soft-deleted section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("section", args[0])
			if err != nil {
				return err
			}
			return wire.SectionAdapterWithOutput(cmd.OutOrStdout()).SetStatus(NewContext(), id, false)
		},
	}
}

func sectionPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge [section-id]",
		Short: "Permanently remove a soft-deleted section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("section", args[0])
			if err != nil {
				return err
			}
			return wire.SectionAdapterWithOutput(cmd.OutOrStdout()).Purge(NewContext(), id)
		},
	}
}
