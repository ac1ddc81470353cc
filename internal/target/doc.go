// Package target defines the catalog of configuration targets: the concrete
// files in which each supported AI tool stores its MCP server mapping.
//
// A [Target] pairs a file location (scope + path template) with the dialect
// used inside it and the document encoding around it. Targets are immutable
// descriptors declared once at startup; the engine receives a [Catalog] by
// injection so tests can substitute a smaller one.
//
// Catalog order is a semantic contract: discovery merges targets
// first-writer-wins in exactly the order a catalog declares them, so
// reordering entries changes merge results.
package target
