// Package mcp defines the canonical, target-agnostic representation of an
// MCP server.
//
// Every configuration target stores servers in its own dialect; the
// adapters in internal/dialect translate between those dialects and the
// [Server] type defined here. Canonical records are ephemeral: discovery
// rebuilds them from the files on every call, and nothing caches them in
// between.
package mcp
