package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dirsearch/internal/domain"
	resolveuc "github.com/kailas-cloud/dirsearch/internal/usecase/resolve"
)

var resolveProfilesPath string

var resolveCmd = &cobra.Command{
	Use:   "resolve <segment>",
	Short: "Resolve a profile URL segment against a local profiles file",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveProfilesPath, "profiles", "", "Profiles file (.json or .yaml)")
	_ = resolveCmd.MarkFlagRequired("profiles")
}

func runResolve(cmd *cobra.Command, args []string) error {
	profiles, err := readProfiles(resolveProfilesPath)
	if err != nil {
		return err
	}

	out := resolveuc.NewResolver().Resolve(args[0], profiles)
	found, ok := out.(resolveuc.Found)
	if !ok {
		return fmt.Errorf("%q: %w", args[0], domain.ErrProfileNotFound)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", found.Profile.ID, found.Profile.DisplayName, found.Stage)
	return nil
}
