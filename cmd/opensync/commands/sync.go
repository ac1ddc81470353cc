package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opensync/opensync/internal/backup"
	"github.com/opensync/opensync/internal/engine"
	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/mcp"
	"github.com/opensync/opensync/internal/target"
)

var (
	syncTargets  []string
	syncAll      bool
	syncNoBackup bool
)

func init() {
	syncCmd.Flags().StringSliceVarP(&syncTargets, "target", "t", nil,
		"target id(s) to write to (repeatable, see 'opensync targets')")
	syncCmd.Flags().BoolVar(&syncAll, "all", false,
		"write to every writable target in the scope")
	syncCmd.Flags().BoolVar(&syncNoBackup, "no-backup", false,
		"skip backups of target files before writing")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync [server...]",
	Short: "Write servers to tool configs",
	Long: `Discover the scope's canonical server view and write the chosen
servers into the chosen tool configs, translated to each tool's dialect.

With no server arguments on a terminal, an interactive picker opens.
With no server arguments otherwise, every discovered server is synced.

Unless --no-backup is given (or backups are disabled in the config),
each target file is copied to a timestamped .bak sibling before the
write, and one snapshot of the whole scope is taken per session.`,
	Example: `  # Push one server to every tool
  opensync sync github --all

  # Push everything to two specific tools
  opensync sync --target cursor_global --target vscode_global

  # Project scope, no backups
  opensync sync --scope project --all --no-backup`,
	Args: cobra.ArbitraryArgs,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	if len(syncTargets) == 0 && !syncAll {
		return errors.NewUserError(
			errors.New("no targets selected"),
			"use --target <id> (see 'opensync targets') or --all")
	}

	e := newEngine()
	scope := activeScope()

	targetIDs := syncTargets
	if syncAll {
		targetIDs = writableTargetIDs(e, scope)
	}

	serverNames := args
	if len(serverNames) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		picked, err := pickServers(e.Discover(scope, projectFlag))
		if err != nil {
			return err
		}
		if picked == nil {
			// Picker aborted
			return nil
		}
		serverNames = picked
	}

	withBackup := cfg.Backup.Enabled && !syncNoBackup
	if withBackup {
		if err := snapshotScope(e, scope); err != nil {
			return err
		}
	}

	results, backups, err := e.Sync(serverNames, targetIDs, withBackup, scope, projectFlag)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NewUserError(err, "run 'opensync list' to see known servers")
		}
		return err
	}

	out := cmd.OutOrStdout()
	failed := printResults(out, results)
	if len(backups) > 0 && verbosity > 0 {
		for id, path := range backups {
			fmt.Fprintf(out, "  backup for %s: %s\n", id, path)
		}
	}
	if failed > 0 {
		return errors.NewExitError(
			errors.Newf("%d of %d target(s) failed", failed, len(results)),
			errors.ExitSystem)
	}
	return nil
}

// snapshotScope captures every existing target file in the scope, once per
// session, then prunes snapshots beyond the configured retention.
func snapshotScope(e *engine.Engine, scope target.Scope) error {
	var paths []string
	for _, tgt := range e.Catalog().Scope(scope) {
		paths = append(paths, tgt.ResolvePath(projectFlag))
	}

	mgr := backup.NewManager(backup.WithRetentionCount(cfg.Backup.Retention))
	if err := backup.EnsureSnapshot(mgr, string(scope), paths); err != nil {
		return err
	}
	if cfg.Backup.Retention > 0 {
		if err := mgr.Prune(string(scope), cfg.Backup.Retention); err != nil {
			return errors.Wrap(err, "pruning old snapshots")
		}
	}
	return nil
}

// pickServers opens a fuzzy finder over the discovered server names.
// Returns nil with no error when the user aborts.
func pickServers(servers map[string]*mcp.Server) ([]string, error) {
	if len(servers) == 0 {
		return nil, errors.NewUserError(errors.New("no servers discovered"),
			"add one with 'opensync add' or configure a tool first")
	}

	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)

	indexes, err := fuzzyfinder.FindMulti(
		names,
		func(i int) string {
			return names[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			s := servers[names[i]]
			if s.URL != "" {
				return fmt.Sprintf("Name: %s\nURL: %s\n\nSources:\n%s",
					s.Name, s.URL, strings.Join(s.Sources, "\n"))
			}
			return fmt.Sprintf("Name: %s\nCommand: %s %s\n\nSources:\n%s",
				s.Name, s.Command, strings.Join(s.Args, " "), strings.Join(s.Sources, "\n"))
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	picked := make([]string, 0, len(indexes))
	for _, i := range indexes {
		picked = append(picked, names[i])
	}
	return picked, nil
}
