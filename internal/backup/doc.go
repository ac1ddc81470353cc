// Package backup provides snapshot and restore capabilities for the tool
// configs opensync writes to.
//
// The sibling .bak files the sync engine drops next to a target file protect
// one file against one write. Snapshots protect a whole scope: every target
// file the catalog knows about, captured together before a sync run, so a
// bad run can be rolled back as a unit.
//
// # Snapshot Layout
//
// Each snapshot is a timestamped directory containing a manifest and the
// copied files:
//
//	~/.local/share/opensync/backups/
//	└── {scope}/
//	    └── {timestamp}/
//	        ├── manifest.json
//	        └── {copied files...}
//
// # Creating Snapshots
//
// Use [Manager.Snapshot] with the resolved paths of a scope's targets:
//
//	mgr := backup.NewManager()
//	manifest, err := mgr.Snapshot("global", paths)
//
// Missing paths are skipped; the manifest records contents, permissions,
// and SHA256 checksums of everything captured.
//
// # Restoring
//
// Use [Manager.Restore] to put every captured file back:
//
//	err := mgr.Restore("global", "20260823T100712")
//
// Integrity is verified against the stored checksums first; a mismatch
// aborts with [ErrSnapshotCorrupted] before anything is overwritten.
//
// # Retention
//
// [Manager.Prune] keeps the newest n snapshots per scope and removes the
// rest. The retention count comes from the backup section of the opensync
// config file.
package backup
