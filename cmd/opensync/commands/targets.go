package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opensync/opensync/internal/target"
)

var targetsJSON bool

func init() {
	targetsCmd.Flags().BoolVar(&targetsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(targetsCmd)
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List known tool config targets",
	Long: `List every tool config file opensync knows how to read and write,
with its scope, file format, and resolved path.

Targets disabled in the config file are not shown.`,
	Example: `  # List all targets
  opensync targets

  # Only the current scope's targets, as JSON
  opensync targets --scope project --json`,
	RunE: runTargets,
}

type targetOutput struct {
	ID     string `json:"id"`
	Tool   string `json:"tool"`
	Label  string `json:"label"`
	Scope  string `json:"scope"`
	Format string `json:"format"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

func runTargets(cmd *cobra.Command, _ []string) error {
	return runTargetsWithWriter(cmd.OutOrStdout())
}

func runTargetsWithWriter(w io.Writer) error {
	catalog := cfg.Catalog()

	var targets []*target.Target
	if scopeFlag != "" {
		targets = catalog.Scope(activeScope())
	} else {
		targets = catalog.All()
	}

	output := make([]targetOutput, 0, len(targets))
	for _, tgt := range targets {
		path := tgt.ResolvePath(projectFlag)
		_, err := os.Stat(path)
		output = append(output, targetOutput{
			ID:     tgt.ID,
			Tool:   tgt.Tool,
			Label:  tgt.Label,
			Scope:  string(tgt.Scope),
			Format: string(tgt.Format),
			Path:   path,
			Exists: err == nil,
		})
	}

	if targetsJSON {
		return writeJSON(w, output)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTOOL\tSCOPE\tFORMAT\tPATH")
	for _, t := range output {
		marker := ""
		if t.Exists {
			marker = " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%s\n", t.ID, t.Label, t.Scope, t.Format, t.Path, marker)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w, "\n* config file exists")
	return nil
}
