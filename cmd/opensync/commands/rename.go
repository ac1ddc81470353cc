package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opensync/opensync/internal/engine"
	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/registry"
)

var renameTargets []string

func init() {
	renameCmd.Flags().StringSliceVarP(&renameTargets, "target", "t", nil,
		"target id(s) to rename in (default: every writable target in the scope)")
	rootCmd.AddCommand(renameCmd)
}

var renameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a server across tool configs",
	Long: `Rename one server entry in tool configs in the current scope.

Each tool's entry is moved to the new key exactly as that tool stored
it; nothing about the definition itself changes. Tools without the old
name report a no-op. A registry entry under the old name is renamed too.`,
	Example: `  # Rename everywhere in the global scope
  opensync rename github gh

  # Rename in one tool only
  opensync rename github gh --target vscode_global`,
	Args: cobra.ExactArgs(2),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	oldName, newName := args[0], args[1]
	if newName == "" {
		return errors.NewUserError(errors.ErrMissingName, "provide a non-empty new name")
	}

	e := newEngine()
	scope := activeScope()

	targetIDs := renameTargets
	if len(targetIDs) == 0 {
		targetIDs = writableTargetIDs(e, scope)
	}

	out := cmd.OutOrStdout()
	var results []engine.SyncResult
	for _, id := range targetIDs {
		results = append(results, e.Rename(id, oldName, newName, projectFlag))
	}
	failed := printResults(out, results)

	if err := registry.Default().Rename(oldName, newName, scope, projectFlag); err != nil {
		if !errors.Is(err, errors.ErrNotFound) {
			return errors.Wrap(err, "renaming in registry")
		}
	} else {
		fmt.Fprintf(out, "✓ Renamed '%s' to '%s' in the registry\n", oldName, newName)
	}

	if failed > 0 {
		return errors.NewExitError(
			errors.Newf("%d target(s) failed", failed), errors.ExitSystem)
	}
	return nil
}
