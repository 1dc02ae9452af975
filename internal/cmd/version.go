package cmd

import (
	"github.com/Srijan619/ziffy/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates and returns the version subcommand for the ziffy CLI.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion(cmd.OutOrStdout(), "ziffy")
		},
	}
}
