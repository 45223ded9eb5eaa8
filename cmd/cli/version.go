package cli

import (
	"fmt"

	"github.com/flowbaker/infomaniak/internal/version"

	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()

			fmt.Fprintf(cmd.OutOrStdout(), "infomaniak %s\n", info.Version)
			if info.GitCommit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  commit:   %s\n", info.GitCommit)
			}
			if info.BuildDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  built:    %s\n", info.BuildDate)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  go:       %s\n", info.GoVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "  platform: %s\n", info.Platform)
		},
	}
}
