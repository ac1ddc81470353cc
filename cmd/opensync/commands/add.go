package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/mcp"
	"github.com/opensync/opensync/internal/registry"
)

// Sentinel errors for add operations.
var (
	errAddMissingCommandOrURL = errors.New("either a command or --url is required")
	errAddBothCommandAndURL   = errors.New("cannot specify both a command and --url")
)

// Package-level flag variables for the add command.
var (
	addURL     string
	addEnv     []string
	addHeaders []string
	addType    string
)

func init() {
	addCmd.Flags().StringVar(&addURL, "url", "",
		"remote server endpoint")
	addCmd.Flags().StringSliceVar(&addEnv, "env", nil,
		"environment variables in KEY=VALUE format (repeatable)")
	addCmd.Flags().StringSliceVar(&addHeaders, "header", nil,
		"HTTP headers in KEY=VALUE format for remote servers (repeatable)")
	addCmd.Flags().StringVar(&addType, "type", "",
		"explicit transport type: stdio, http, sse")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name> [command] [args...]",
	Short: "Add a server to the local registry",
	Long: `Add an MCP server definition to the local registry.

Registry entries survive tools removing or mangling their own configs;
they show up in 'opensync list' and get pushed to tools with
'opensync sync'. Adding a name that already exists replaces it.

For local stdio servers, provide a command and optional arguments.
For remote servers, use the --url flag.`,
	Example: `  # Add a local stdio server
  opensync add github npx -y @modelcontextprotocol/server-github

  # Add a remote server with an auth header
  opensync add linear --url https://mcp.linear.app/mcp --header "Authorization=Bearer TOKEN"

  # Add a local server with environment variables
  opensync add db ./db-mcp --env DB_HOST=localhost

  # Push it everywhere afterwards
  opensync sync github --all`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	command := ""
	var commandArgs []string
	if len(args) > 1 {
		command = args[1]
		commandArgs = args[2:]
	}

	if command == "" && addURL == "" {
		return errors.NewUserError(errAddMissingCommandOrURL,
			"give a command for local servers or --url for remote ones")
	}
	if command != "" && addURL != "" {
		return errors.NewUserError(errAddBothCommandAndURL,
			"a server is either local (command) or remote (--url)")
	}

	env, err := parseKeyValues(addEnv, "--env")
	if err != nil {
		return err
	}
	headers, err := parseKeyValues(addHeaders, "--header")
	if err != nil {
		return err
	}

	server := &mcp.Server{
		Name:    name,
		Command: command,
		Args:    commandArgs,
		Env:     env,
		Type:    addType,
		URL:     addURL,
		Headers: headers,
	}

	rec, err := registry.Default().Add(server, activeScope(), projectFlag)
	if err != nil {
		return errors.Wrap(err, "adding to registry")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added '%s' to the registry (id %s)\n", rec.Name, rec.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "  Run 'opensync sync %s --all' to push it to your tools.\n", rec.Name)
	return nil
}

// parseKeyValues parses repeated KEY=VALUE flag values into a map.
func parseKeyValues(pairs []string, flagName string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.NewUserError(
				errors.Newf("invalid %s value %q", flagName, pair),
				fmt.Sprintf("use %s KEY=VALUE", flagName))
		}
		out[key] = value
	}
	return out, nil
}
