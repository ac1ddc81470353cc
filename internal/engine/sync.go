package engine

import (
	"fmt"
	"sort"

	"github.com/opensync/opensync/internal/dialect"
	"github.com/opensync/opensync/internal/document"
	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/mcp"
	"github.com/opensync/opensync/internal/target"
)

// failure reduces an error to a per-target result. The cause stays on Err
// so callers can match the taxonomy sentinels with errors.Is; Message is
// the same error rendered for humans.
func failure(tgt *target.Target, id string, err error) SyncResult {
	res := SyncResult{
		Target:  id,
		Success: false,
		Message: err.Error(),
		Err:     err,
	}
	if tgt != nil {
		res.Label = tgt.Label
	}
	return res
}

func unknownTarget(id string) SyncResult {
	return failure(nil, id, errors.Wrapf(errors.ErrUnknownTarget, "%s", id))
}

func readOnlyTarget(tgt *target.Target) SyncResult {
	return failure(tgt, tgt.ID,
		errors.Wrapf(errors.ErrUnsupportedOperation, "%s is discovery-only", tgt.Label))
}

// writable resolves an id to a target that accepts writes, or returns the
// failure result to report instead.
func (e *Engine) writable(targetID string) (*target.Target, SyncResult, bool) {
	tgt, ok := e.catalog.ByID(targetID)
	if !ok {
		return nil, unknownTarget(targetID), false
	}
	if tgt.ReadOnly {
		return nil, readOnlyTarget(tgt), false
	}
	return tgt, SyncResult{}, true
}

// Write upserts the given servers into one target, encoding each through
// the target's dialect adapter. Entries under other names and unrelated
// document keys are left untouched. With backup set, the current file is
// snapshotted first and the write is abandoned if that fails.
func (e *Engine) Write(targetID string, servers []*mcp.Server, backup bool, projectDir string) SyncResult {
	tgt, res, ok := e.writable(targetID)
	if !ok {
		return res
	}
	if backup {
		if _, err := e.Backup(tgt, projectDir); err != nil {
			return failure(tgt, tgt.ID, errors.Wrapf(err, "backing up %s", tgt.Label))
		}
	}
	return e.write(tgt, servers, projectDir)
}

func (e *Engine) write(tgt *target.Target, servers []*mcp.Server, projectDir string) SyncResult {
	path := tgt.ResolvePath(projectDir)
	doc, err := document.Load(path, tgt.Format)
	if err != nil {
		return failure(tgt, tgt.ID, errors.Wrapf(err, "reading %s", tgt.Label))
	}

	adapter := dialect.ForDialect(tgt.Dialect)
	mapping := document.ServerMapping(doc, tgt.RootKey)
	written := make([]string, 0, len(servers))
	for _, s := range servers {
		mapping[s.Name] = adapter.Encode(s)
		written = append(written, s.Name)
	}
	doc[tgt.RootKey] = mapping

	if err := document.Save(path, tgt.Format, doc); err != nil {
		return failure(tgt, tgt.ID, errors.Wrapf(err, "writing %s", tgt.Label))
	}

	e.log.Info("wrote servers", "target", tgt.ID, "count", len(servers), "path", path)
	return SyncResult{
		Target:  tgt.ID,
		Label:   tgt.Label,
		Success: true,
		Message: fmt.Sprintf("Wrote %d server(s) to %s", len(written), tgt.Label),
		Written: written,
	}
}

// Remove deletes one server entry from one target. Removing a name the
// target never had is a successful no-op.
func (e *Engine) Remove(targetID, name string, projectDir string) SyncResult {
	tgt, res, ok := e.writable(targetID)
	if !ok {
		return res
	}

	path := tgt.ResolvePath(projectDir)
	doc, err := document.Load(path, tgt.Format)
	if err != nil {
		return failure(tgt, tgt.ID, errors.Wrapf(err, "reading %s", tgt.Label))
	}

	mapping := document.ServerMapping(doc, tgt.RootKey)
	if _, ok := mapping[name]; !ok {
		return SyncResult{
			Target:  tgt.ID,
			Label:   tgt.Label,
			Success: true,
			Message: fmt.Sprintf("Server '%s' not found in %s", name, tgt.Label),
		}
	}
	delete(mapping, name)
	doc[tgt.RootKey] = mapping

	if err := document.Save(path, tgt.Format, doc); err != nil {
		return failure(tgt, tgt.ID, errors.Wrapf(err, "writing %s", tgt.Label))
	}
	return SyncResult{
		Target:  tgt.ID,
		Label:   tgt.Label,
		Success: true,
		Message: fmt.Sprintf("Removed '%s' from %s", name, tgt.Label),
	}
}

// RemoveAll removes one server from every writable target in the scope.
func (e *Engine) RemoveAll(name string, scope target.Scope, projectDir string) []SyncResult {
	var out []SyncResult
	for _, tgt := range e.catalog.Scope(scope) {
		if tgt.ReadOnly {
			continue
		}
		out = append(out, e.Remove(tgt.ID, name, projectDir))
	}
	return out
}

// Rename moves a server entry to a new key in one target, keeping the raw
// entry byte-for-byte as the target stored it. A missing old name is a
// successful no-op; an existing new name is overwritten.
func (e *Engine) Rename(targetID, oldName, newName string, projectDir string) SyncResult {
	tgt, res, ok := e.writable(targetID)
	if !ok {
		return res
	}

	path := tgt.ResolvePath(projectDir)
	doc, err := document.Load(path, tgt.Format)
	if err != nil {
		return failure(tgt, tgt.ID, errors.Wrapf(err, "reading %s", tgt.Label))
	}

	mapping := document.ServerMapping(doc, tgt.RootKey)
	raw, ok := mapping[oldName]
	if !ok {
		return SyncResult{
			Target:  tgt.ID,
			Label:   tgt.Label,
			Success: true,
			Message: fmt.Sprintf("Server '%s' not found in %s", oldName, tgt.Label),
		}
	}
	delete(mapping, oldName)
	mapping[newName] = raw
	doc[tgt.RootKey] = mapping

	if err := document.Save(path, tgt.Format, doc); err != nil {
		return failure(tgt, tgt.ID, errors.Wrapf(err, "writing %s", tgt.Label))
	}
	return SyncResult{
		Target:  tgt.ID,
		Label:   tgt.Label,
		Success: true,
		Message: fmt.Sprintf("Renamed '%s' to '%s' in %s", oldName, newName, tgt.Label),
	}
}

// RenameAll renames one server in every writable target in the scope.
func (e *Engine) RenameAll(oldName, newName string, scope target.Scope, projectDir string) []SyncResult {
	var out []SyncResult
	for _, tgt := range e.catalog.Scope(scope) {
		if tgt.ReadOnly {
			continue
		}
		out = append(out, e.Rename(tgt.ID, oldName, newName, projectDir))
	}
	return out
}

// Sync discovers the scope's canonical view, selects the named servers
// (all of them when serverNames is empty), and writes the selection to each
// requested target. One result per target; backups maps target id to the
// snapshot created for it.
//
// An unknown server name is the caller's mistake and fails the whole run
// before anything is written. Unknown or read-only targets only fail their
// own result.
func (e *Engine) Sync(serverNames, targetIDs []string, backup bool, scope target.Scope, projectDir string) ([]SyncResult, map[string]string, error) {
	discovered := e.Discover(scope, projectDir)

	var selection []*mcp.Server
	if len(serverNames) == 0 {
		for _, s := range discovered {
			selection = append(selection, s)
		}
	} else {
		for _, name := range serverNames {
			s, ok := discovered[name]
			if !ok {
				return nil, nil, errors.Wrapf(errors.ErrNotFound, "server %q", name)
			}
			selection = append(selection, s)
		}
	}
	sort.Slice(selection, func(i, j int) bool {
		return selection[i].Name < selection[j].Name
	})

	results := make([]SyncResult, 0, len(targetIDs))
	backups := map[string]string{}
	for _, id := range targetIDs {
		tgt, res, ok := e.writable(id)
		if !ok {
			results = append(results, res)
			continue
		}
		if backup {
			bak, err := e.Backup(tgt, projectDir)
			if err != nil {
				results = append(results,
					failure(tgt, tgt.ID, errors.Wrapf(err, "backing up %s", tgt.Label)))
				continue
			}
			if bak != "" {
				backups[tgt.ID] = bak
			}
		}
		results = append(results, e.write(tgt, selection, projectDir))
	}
	return results, backups, nil
}
