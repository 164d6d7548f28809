package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	resolveuc "github.com/kailas-cloud/dirsearch/internal/usecase/resolve"
)

var slugCmd = &cobra.Command{
	Use:   "slug <display name>...",
	Short: "Print the canonical URL slug for a display name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), resolveuc.CanonicalSlug(strings.Join(args, " ")))
		return nil
	},
}
