package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/opensync/opensync/internal/backup"
	"github.com/opensync/opensync/internal/errors"
)

func init() {
	snapshotCmd.AddCommand(snapshotCreateCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotRestoreCmd)
	snapshotCmd.AddCommand(snapshotPruneCmd)
	rootCmd.AddCommand(snapshotCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage snapshots of tool configs",
	Long: `Manage whole-scope snapshots of tool config files.

A snapshot captures every existing target file of a scope together, so
a bad sync run can be rolled back as a unit. Sync takes one snapshot
automatically per session; these commands create, inspect, restore, and
prune them by hand.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var snapshotCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot the scope's config files now",
	Example: `  # Snapshot all global tool configs
  opensync snapshot create`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e := newEngine()
		scope := activeScope()

		var paths []string
		for _, tgt := range e.Catalog().Scope(scope) {
			paths = append(paths, tgt.ResolvePath(projectFlag))
		}

		mgr := backup.NewManager(backup.WithRetentionCount(cfg.Backup.Retention))
		manifest, err := mgr.Snapshot(string(scope), paths)
		if err != nil {
			if errors.Is(err, backup.ErrNothingToCapture) {
				fmt.Fprintln(cmd.OutOrStdout(), "No config files exist yet; nothing to snapshot.")
				return nil
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Snapshot %s captured %d file(s)\n",
			manifest.ID, len(manifest.Files))
		return nil
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots for the scope",
	RunE: func(cmd *cobra.Command, _ []string) error {
		mgr := backup.NewManager()
		manifests, err := mgr.List(string(activeScope()))
		if err != nil {
			if errors.Is(err, backup.ErrNoSnapshotsFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No snapshots found.")
				return nil
			}
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCREATED\tFILES")
		for _, m := range manifests {
			fmt.Fprintf(tw, "%s\t%s\t%d\n",
				m.ID, m.CreatedAt.Local().Format(time.RFC3339), len(m.Files))
		}
		return tw.Flush()
	},
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore <snapshot-id>",
	Short: "Restore every file from a snapshot",
	Long: `Restore every config file captured in a snapshot to its original
location, overwriting current contents. Integrity is verified first; a
corrupt snapshot aborts before anything is written.`,
	Example: `  # Roll the global scope back
  opensync snapshot restore 20260823T100712`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := backup.NewManager()
		if err := mgr.Restore(string(activeScope()), args[0]); err != nil {
			if errors.Is(err, backup.ErrNoSnapshotsFound) {
				return errors.NewUserError(err, "run 'opensync snapshot list' to see snapshot ids")
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Restored snapshot %s\n", args[0])
		return nil
	},
}

var snapshotPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove snapshots beyond the retention count",
	RunE: func(cmd *cobra.Command, _ []string) error {
		keep := cfg.Backup.Retention
		if keep <= 0 {
			keep = backup.DefaultRetentionCount
		}
		mgr := backup.NewManager()
		if err := mgr.Prune(string(activeScope()), keep); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Pruned snapshots, keeping the newest %d\n", keep)
		return nil
	},
}
