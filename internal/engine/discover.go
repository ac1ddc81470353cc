package engine

import (
	"os"
	"sort"

	"github.com/opensync/opensync/internal/dialect"
	"github.com/opensync/opensync/internal/document"
	"github.com/opensync/opensync/internal/mcp"
	"github.com/opensync/opensync/internal/target"
)

// Discover reads every target in the scope and merges the results by name.
//
// Targets are read in catalog order. The first target to define a name
// determines the record's fields; later targets defining the same name only
// append to Sources. Unreadable or malformed targets are skipped, so one
// corrupt config never hides the rest.
func (e *Engine) Discover(scope target.Scope, projectDir string) map[string]*mcp.Server {
	servers := map[string]*mcp.Server{}
	for _, tgt := range e.catalog.Scope(scope) {
		e.discoverTarget(tgt, projectDir, servers)
	}
	e.mergeSource(servers, scope, projectDir)
	return servers
}

func (e *Engine) discoverTarget(tgt *target.Target, projectDir string, servers map[string]*mcp.Server) {
	path := tgt.ResolvePath(projectDir)
	doc, err := document.Load(path, tgt.Format)
	if err != nil {
		e.log.Debug("skipping unreadable target",
			"target", tgt.ID, "path", path, "error", err)
		return
	}

	adapter := dialect.ForDialect(tgt.Dialect)
	for name, entry := range document.ServerMapping(doc, tgt.RootKey) {
		if name == "" {
			continue
		}
		raw, ok := entry.(map[string]any)
		if !ok {
			e.log.Debug("skipping malformed entry", "target", tgt.ID, "server", name)
			continue
		}
		if existing, ok := servers[name]; ok {
			existing.AddSource(tgt.ID)
			continue
		}
		s := adapter.Decode(name, raw)
		s.AddSource(tgt.ID)
		servers[name] = s
	}
}

// mergeSource folds registry-managed records in after every file target.
// Only the records stored for this scope participate, so a global registry
// entry never shows up in a project discovery. File definitions win on name
// collisions; the registry only contributes its source tag and, for
// matching names, the stored ID.
func (e *Engine) mergeSource(servers map[string]*mcp.Server, scope target.Scope, projectDir string) {
	if e.source == nil {
		return
	}
	stored, err := e.source.List(scope, projectDir)
	if err != nil {
		e.log.Debug("skipping registry source", "error", err)
		return
	}
	tag := e.source.Tag()
	for _, s := range stored {
		if existing, ok := servers[s.Name]; ok {
			existing.AddSource(tag)
			if existing.ID == "" {
				existing.ID = s.ID
			}
			continue
		}
		rec := s.Clone()
		rec.Sources = nil
		rec.AddSource(tag)
		servers[s.Name] = rec
	}
}

// TargetStatus describes one target's file as seen on disk.
type TargetStatus struct {
	Target  *target.Target `json:"-"`
	ID      string         `json:"target"`
	Label   string         `json:"label"`
	Path    string         `json:"path"`
	Exists  bool           `json:"exists"`
	Servers []string       `json:"servers,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Status reads every target in the scope and reports, per target, whether
// its file exists and which server names it defines. Unlike Discover it
// surfaces per-target read errors instead of hiding them.
func (e *Engine) Status(scope target.Scope, projectDir string) []TargetStatus {
	var out []TargetStatus
	for _, tgt := range e.catalog.Scope(scope) {
		st := TargetStatus{
			Target: tgt,
			ID:     tgt.ID,
			Label:  tgt.Label,
			Path:   tgt.ResolvePath(projectDir),
		}
		if _, err := os.Stat(st.Path); err == nil {
			st.Exists = true
		}
		doc, err := document.Load(st.Path, tgt.Format)
		if err != nil {
			st.Error = err.Error()
		} else {
			for name := range document.ServerMapping(doc, tgt.RootKey) {
				st.Servers = append(st.Servers, name)
			}
			sort.Strings(st.Servers)
		}
		out = append(out, st)
	}
	return out
}
