package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pinboard/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pinboard %s\n%s\n", buildInfo, build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
