package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show each target's config file state",
	Long: `Show, per target in the current scope, whether its config file
exists, which server names it defines, and any read errors.

Unlike 'opensync list', which merges everything into one view, status
shows the raw per-tool picture, including files that fail to parse.`,
	Example: `  # Global scope status
  opensync status

  # A project's status
  opensync status --scope project -C ~/work/myapp`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	statuses := newEngine().Status(activeScope(), projectFlag)

	w := cmd.OutOrStdout()
	if statusJSON {
		return writeJSON(w, statuses)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TARGET\tFILE\tSERVERS")
	for _, st := range statuses {
		state := "missing"
		switch {
		case st.Error != "":
			state = "error"
		case st.Exists:
			state = "ok"
		}
		detail := strings.Join(st.Servers, ", ")
		if st.Error != "" {
			detail = truncate(st.Error, 60)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", st.Label, state, detail)
	}
	return tw.Flush()
}
