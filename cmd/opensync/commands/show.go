package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opensync/opensync/internal/catalog"
	"github.com/opensync/opensync/internal/errors"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <registry-name>",
	Short: "Show a public registry server's details",
	Long: `Show the latest published version of one MCP registry listing,
including its packages and hosted endpoints.

Use the full registry name as printed by 'opensync search', e.g.
io.github.owner/server.`,
	Example: `  # Show the GitHub MCP server listing
  opensync show io.github.github/github-mcp-server`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	client := catalog.NewClient(cfg.RegistryURL)
	result, err := client.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NewUserError(err, "check the exact name with 'opensync search'")
		}
		return errors.Wrap(err, "fetching registry entry")
	}

	return printShowResult(cmd.OutOrStdout(), result)
}

func printShowResult(w io.Writer, r *catalog.Result) error {
	if showJSON {
		return writeJSON(w, r)
	}

	fmt.Fprintf(w, "Name:        %s\n", r.Name)
	fmt.Fprintf(w, "Version:     %s\n", r.Version)
	if r.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", r.Description)
	}
	if r.Repository != "" {
		fmt.Fprintf(w, "Repository:  %s\n", r.Repository)
	}

	if len(r.Packages) > 0 {
		fmt.Fprintln(w, "\nPackages:")
		for _, pkg := range r.Packages {
			fmt.Fprintf(w, "  %s: %s", pkg.RegistryType, pkg.Identifier)
			if pkg.Version != "" {
				fmt.Fprintf(w, "@%s", pkg.Version)
			}
			if pkg.RuntimeHint != "" {
				fmt.Fprintf(w, " (run with %s)", pkg.RuntimeHint)
			}
			fmt.Fprintln(w)
		}
	}

	if len(r.Remotes) > 0 {
		fmt.Fprintln(w, "\nRemotes:")
		for _, remote := range r.Remotes {
			fmt.Fprintf(w, "  %s: %s\n", remote.Type, remote.URL)
		}
	}

	return nil
}
