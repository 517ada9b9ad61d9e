package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionInfo carries build metadata printed by the version subcommand.
type VersionInfo struct {
	Version string
	Commit  string
}

func NewRootCommand(info VersionInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lumenctl",
		Short: "lumenctl - Lumen runtime core diagnostics",
		Long: `lumenctl drives the Lumen runtime core directly, without a compiler or
bytecode interpreter attached, for inspecting allocator and collector
behavior during development.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Version = fmt.Sprintf("%s.%s", info.Version, info.Commit)
	cmd.AddCommand(NewHeapCommand())
	cmd.AddCommand(NewVersionCommand(info))

	return cmd
}

func NewVersionCommand(info VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print lumenctl's version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("lumenctl %s (%s)\n", info.Version, info.Commit)
			return nil
		},
	}
}
