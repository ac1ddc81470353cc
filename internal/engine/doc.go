// Package engine implements discovery and synchronization of MCP server
// definitions across the target catalog.
//
// Discovery reads every target in one scope and merges the results into a
// canonical view: the first target to define a name wins, later targets
// only add source attribution. Sync pushes a chosen set of canonical
// records back out, one target at a time, reporting per-target results
// instead of failing the whole run.
package engine
