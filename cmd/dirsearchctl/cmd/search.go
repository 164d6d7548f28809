package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
	searchuc "github.com/kailas-cloud/dirsearch/internal/usecase/search"
)

var (
	searchCatalogPath  string
	searchProfilesPath string
	searchLimit        int
	searchJSON         bool
	searchMonospace    bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search profiles in local snapshot files",
	Long: "Comma-separated keywords must all match one profile's catalog; a single keyword\n" +
		"matches catalog entries or profile fields.",
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchCatalogPath, "catalog", "", "Catalog file (.json or .yaml)")
	f.StringVar(&searchProfilesPath, "profiles", "", "Profiles file (.json or .yaml)")
	f.IntVarP(&searchLimit, "limit", "n", 0, "Max profiles to print (0 = all)")
	f.BoolVar(&searchJSON, "json", false, "Output as JSON")
	f.BoolVar(&searchMonospace, "monospace", false, "Also fold Mathematical Monospace letters")
	_ = searchCmd.MarkFlagRequired("catalog")
	_ = searchCmd.MarkFlagRequired("profiles")
}

func runSearch(cmd *cobra.Command, args []string) error {
	entities, err := readCatalog(searchCatalogPath)
	if err != nil {
		return err
	}
	profiles, err := readProfiles(searchProfilesPath)
	if err != nil {
		return err
	}

	svc := searchuc.New(nil, newNormalizer(searchMonospace))
	res := svc.Evaluate(args[0], entities, profiles, searchLimit)

	if searchJSON {
		return writeSearchJSON(cmd.OutOrStdout(), &res)
	}
	writeSearchText(cmd.OutOrStdout(), &res)
	return nil
}

type searchOutput struct {
	Query           string          `json:"query"`
	Mode            string          `json:"mode"`
	Keywords        []string        `json:"keywords"`
	MatchedOwnerIDs []string        `json:"matched_owner_ids"`
	TagMatchCount   int             `json:"tag_match_count"`
	Total           int             `json:"total"`
	Profiles        []profileOutput `json:"profiles"`
}

type profileOutput struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

func writeSearchJSON(w io.Writer, res *result.Result) error {
	q := res.Query()
	out := searchOutput{
		Query:           q.Raw(),
		Mode:            string(q.Mode()),
		Keywords:        append([]string{}, q.Keywords()...),
		MatchedOwnerIDs: append([]string{}, res.Match().OwnerIDs()...),
		TagMatchCount:   res.Match().TagMatchCount(),
		Total:           res.Total(),
		Profiles:        make([]profileOutput, len(res.Profiles())),
	}
	for i, p := range res.Profiles() {
		out.Profiles[i] = profileOutput{ID: p.ID, DisplayName: p.DisplayName}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeSearchText(w io.Writer, res *result.Result) {
	q := res.Query()
	fmt.Fprintf(w, "mode: %s  keywords: %s  matched owners: %d  total: %d\n",
		q.Mode(), strings.Join(q.Keywords(), " | "), res.Match().TagMatchCount(), res.Total())

	if len(res.Profiles()) == 0 {
		fmt.Fprintln(w, "no profiles")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range res.Profiles() {
		fmt.Fprintf(tw, "%s\t%s\n", p.ID, p.DisplayName)
	}
	_ = tw.Flush()
}
