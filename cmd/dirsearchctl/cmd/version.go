package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dirsearch/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "dirsearchctl "+version.String())
	},
}
