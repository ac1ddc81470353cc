package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opensync/opensync/internal/logging"
	"github.com/opensync/opensync/internal/mcp"
)

var (
	listJSON        bool
	listShowSecrets bool
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listShowSecrets, "show-secrets", false, "Reveal masked secrets in env values")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List MCP servers discovered across all tools",
	Long: `List the merged view of MCP servers found in every tool config of
the current scope, plus servers managed by the local registry.

When the same server name appears in several tools, the first tool in
catalog order defines it and the others show up as additional sources.

Environment variables containing secrets (TOKEN, KEY, SECRET, PASSWORD,
AUTH, CREDENTIAL, API_KEY) are masked by default. Use --show-secrets to
reveal them.`,
	Example: `  # List all discovered servers
  opensync list

  # Project-scope servers as JSON
  opensync list --scope project --json`,
	RunE: runList,
}

type serverOutput struct {
	Name    string            `json:"name"`
	Type    string            `json:"type,omitempty"`
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	URL     string            `json:"url,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
	Sources []string          `json:"sources"`
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithWriter(cmd.OutOrStdout())
}

func runListWithWriter(w io.Writer) error {
	servers := newEngine().Discover(activeScope(), projectFlag)

	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)

	output := make([]serverOutput, 0, len(names))
	for _, name := range names {
		s := servers[name]
		env := s.Env
		if !listShowSecrets {
			env = logging.MaskSecrets(env)
		}
		sources := append([]string(nil), s.Sources...)
		sort.Strings(sources)
		output = append(output, serverOutput{
			Name:    s.Name,
			Type:    s.Type,
			Command: s.Command,
			Args:    s.Args,
			URL:     s.URL,
			Env:     env,
			Sources: sources,
		})
	}

	if listJSON {
		return writeJSON(w, output)
	}

	if len(output) == 0 {
		fmt.Fprintln(w, "No MCP servers found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tENDPOINT\tSOURCES")
	for _, s := range output {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			s.Name, kindOf(s), truncate(endpointOf(s), 60), strings.Join(s.Sources, ", "))
	}
	return tw.Flush()
}

func kindOf(s serverOutput) string {
	if s.URL != "" {
		if s.Type == mcp.TypeSSE {
			return "remote/sse"
		}
		return "remote"
	}
	return "local"
}

func endpointOf(s serverOutput) string {
	if s.URL != "" {
		return s.URL
	}
	if len(s.Args) > 0 {
		return s.Command + " " + strings.Join(s.Args, " ")
	}
	return s.Command
}
