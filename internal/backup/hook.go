package backup

import (
	"sync"

	"github.com/opensync/opensync/internal/errors"
)

// snapshotOnce tracks per-scope snapshot state within a session so a sync
// run touching many targets snapshots the scope once, not per target.
var (
	snapshotOnce  = make(map[string]*sync.Once)
	snapshotMutex sync.Mutex
)

// EnsureSnapshot takes one snapshot of the scope's files before the first
// modification in this session. Later calls for the same scope are no-ops.
//
// Safe for concurrent calls. Returns nil when a snapshot was just taken,
// was already taken this session, or there is nothing to capture.
func EnsureSnapshot(mgr *Manager, scope string, filePaths []string) error {
	if len(filePaths) == 0 {
		return nil
	}

	snapshotMutex.Lock()
	once, exists := snapshotOnce[scope]
	if !exists {
		once = &sync.Once{}
		snapshotOnce[scope] = once
	}
	snapshotMutex.Unlock()

	var snapErr error
	once.Do(func() {
		_, snapErr = mgr.Snapshot(scope, filePaths)
		if errors.Is(snapErr, ErrNothingToCapture) {
			snapErr = nil
		}
		if snapErr != nil {
			// Reset so the caller can retry after fixing the cause.
			snapshotMutex.Lock()
			delete(snapshotOnce, scope)
			snapshotMutex.Unlock()
		}
	})

	if snapErr != nil {
		return errors.Wrapf(snapErr, "creating snapshot for %s scope", scope)
	}
	return nil
}

// ResetSnapshotState clears the per-scope snapshot state. Primarily useful
// for tests.
func ResetSnapshotState() {
	snapshotMutex.Lock()
	defer snapshotMutex.Unlock()
	snapshotOnce = make(map[string]*sync.Once)
}
