package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/opensync/opensync/internal/engine"
	"github.com/opensync/opensync/internal/registry"
	"github.com/opensync/opensync/internal/target"
)

// activeScope resolves the scope commands operate on: the --scope flag when
// given, the config default otherwise.
func activeScope() target.Scope {
	if scopeFlag == string(target.ScopeProject) {
		return target.ScopeProject
	}
	if scopeFlag == string(target.ScopeGlobal) {
		return target.ScopeGlobal
	}
	return cfg.Scope()
}

// newEngine builds the sync engine from the loaded config, with the local
// registry wired in as a discovery source.
func newEngine() *engine.Engine {
	return engine.New(cfg.Catalog(), registry.Default(), slog.Default())
}

// writableTargetIDs returns the ids of every writable target in the scope.
func writableTargetIDs(e *engine.Engine, scope target.Scope) []string {
	var ids []string
	for _, tgt := range e.Catalog().Scope(scope) {
		if !tgt.ReadOnly {
			ids = append(ids, tgt.ID)
		}
	}
	return ids
}

// printResults writes one line per sync result, with failures in red.
func printResults(w io.Writer, results []engine.SyncResult) (failed int) {
	for _, res := range results {
		if res.Success {
			fmt.Fprintf(w, "%s %s\n", color.GreenString("✓"), res.Message)
		} else {
			fmt.Fprintf(w, "%s %s\n", color.RedString("✗"), res.Message)
			failed++
		}
	}
	return failed
}

// writeJSON encodes v as indented JSON to w.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
