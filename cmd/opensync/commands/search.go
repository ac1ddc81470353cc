package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opensync/opensync/internal/catalog"
	"github.com/opensync/opensync/internal/errors"
)

var (
	searchLimit  int
	searchCursor string
	searchJSON   bool
)

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 30, "maximum results per page")
	searchCmd.Flags().StringVar(&searchCursor, "cursor", "", "pagination cursor from a previous page")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the public MCP registry",
	Long: `Search the public MCP server registry by name.

Results show the registry name to use with 'opensync show' and whether
the server is installable locally (npm, pypi, ...) or hosted remotely.`,
	Example: `  # Find GitHub-related servers
  opensync search github

  # Next page
  opensync search github --cursor <cursor-from-previous-page>`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	client := catalog.NewClient(cfg.RegistryURL)
	results, nextCursor, err := client.Search(cmd.Context(), query, searchCursor, searchLimit)
	if err != nil {
		return errors.Wrap(err, "searching registry")
	}

	return printSearchResults(cmd.OutOrStdout(), results, nextCursor)
}

func printSearchResults(w io.Writer, results []catalog.Result, nextCursor string) error {
	if searchJSON {
		return writeJSON(w, struct {
			Results    []catalog.Result `json:"results"`
			NextCursor string           `json:"next_cursor,omitempty"`
		}{results, nextCursor})
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No servers found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tDIST\tDESCRIPTION")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.Name, r.Version, distOf(r), truncate(r.Description, 60))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if nextCursor != "" {
		fmt.Fprintf(w, "\nMore results: --cursor %s\n", nextCursor)
	}
	return nil
}

// distOf summarizes how a registry listing can be consumed.
func distOf(r catalog.Result) string {
	if len(r.Remotes) > 0 && len(r.Packages) > 0 {
		return "remote+pkg"
	}
	if len(r.Remotes) > 0 {
		return "remote"
	}
	if len(r.Packages) > 0 {
		return r.Packages[0].RegistryType
	}
	return "-"
}
