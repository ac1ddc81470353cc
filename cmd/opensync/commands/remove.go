package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opensync/opensync/internal/engine"
	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/registry"
)

var (
	removeTargets  []string
	removeRegistry bool
)

func init() {
	removeCmd.Flags().StringSliceVarP(&removeTargets, "target", "t", nil,
		"target id(s) to remove from (default: every writable target in the scope)")
	removeCmd.Flags().BoolVar(&removeRegistry, "registry", false,
		"also remove the server from the local registry")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a server from tool configs",
	Long: `Remove one server entry from tool configs in the current scope.

Targets that never had the server report a no-op, not a failure, so
removing a half-synced server from everything is safe to repeat.

The local registry keeps its copy unless --registry is given.`,
	Example: `  # Remove from every tool in the global scope
  opensync remove old-server

  # Remove from one tool only
  opensync remove old-server --target cursor_global

  # Remove everywhere including the registry
  opensync remove old-server --registry`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	e := newEngine()
	scope := activeScope()

	targetIDs := removeTargets
	if len(targetIDs) == 0 {
		targetIDs = writableTargetIDs(e, scope)
	}

	out := cmd.OutOrStdout()
	var results []engine.SyncResult
	for _, id := range targetIDs {
		results = append(results, e.Remove(id, name, projectFlag))
	}
	failed := printResults(out, results)

	if removeRegistry {
		existed, err := registry.Default().Remove(name, scope, projectFlag)
		if err != nil {
			return errors.Wrap(err, "removing from registry")
		}
		if existed {
			fmt.Fprintf(out, "✓ Removed '%s' from the registry\n", name)
		}
	}

	if failed > 0 {
		return errors.NewExitError(
			errors.Newf("%d target(s) failed", failed), errors.ExitSystem)
	}
	return nil
}
