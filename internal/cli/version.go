package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			b := rootOpts.Build
			fmt.Fprintf(cmd.OutOrStdout(), "tokenorder %s\n", b.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Build time: %s\n", b.BuildTime)
			fmt.Fprintf(cmd.OutOrStdout(), "  Git commit: %s\n", b.GitCommit)
		},
	}
}
