package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dirsearch/internal/domain/text"
)

var normalizeMonospace bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize <text>...",
	Short: "Fold decorative Unicode letters to plain lowercase text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNormalize,
}

func init() {
	normalizeCmd.Flags().BoolVar(&normalizeMonospace, "monospace", false, "Also fold Mathematical Monospace letters")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), newNormalizer(normalizeMonospace).Normalize(strings.Join(args, " ")))
	return nil
}

func newNormalizer(monospace bool) *text.Normalizer {
	if monospace {
		return text.NewNormalizer(text.MonospaceTable())
	}
	return text.NewNormalizer(nil)
}
