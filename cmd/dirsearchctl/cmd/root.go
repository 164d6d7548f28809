package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "dirsearchctl",
	Short:         "dirsearch command-line tool",
	Long:          "Normalize text, search and resolve profiles offline, and load snapshots into the store.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(slugCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(versionCmd)
}
