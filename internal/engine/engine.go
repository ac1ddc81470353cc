package engine

import (
	"log/slog"

	"github.com/opensync/opensync/internal/logging"
	"github.com/opensync/opensync/internal/mcp"
	"github.com/opensync/opensync/internal/target"
)

// Source supplies additional server records merged into discovery after
// every file target in the scope has been read. The local registry is the
// only implementation; the indirection keeps the engine testable without
// touching the data directory.
type Source interface {
	// List returns the servers stored for one scope. Project scope is
	// further keyed by the project directory.
	List(scope target.Scope, project string) ([]*mcp.Server, error)

	// Tag is the source attribution recorded on merged records.
	Tag() string
}

// SyncResult reports the outcome of one operation against one target.
// Failures are data, not errors: a sync run returns a result per target and
// never aborts because a single file was unwritable.
type SyncResult struct {
	// Target is the target id the operation ran against.
	Target string `json:"target"`

	// Label is the target's human-readable name, empty for unknown ids.
	Label string `json:"label,omitempty"`

	// Success reports whether the operation completed. No-op outcomes
	// (removing a server that was already absent) count as success.
	Success bool `json:"success"`

	// Message is a one-line human-readable outcome.
	Message string `json:"message"`

	// Written lists the names of the server entries written, for write ops.
	Written []string `json:"written,omitempty"`

	// Err is the failure's cause. The taxonomy sentinels
	// (errors.ErrUnknownTarget, errors.ErrUnsupportedOperation,
	// errors.ErrParse) are matchable with errors.Is. Nil on success.
	Err error `json:"-"`
}

// Engine coordinates reads and writes across the target catalog.
type Engine struct {
	catalog *target.Catalog
	source  Source
	log     *slog.Logger
}

// New builds an engine over the given catalog. source may be nil when no
// registry is in play; log may be nil to discard.
func New(catalog *target.Catalog, source Source, log *slog.Logger) *Engine {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &Engine{catalog: catalog, source: source, log: log}
}

// Catalog returns the catalog the engine operates over.
func (e *Engine) Catalog() *target.Catalog {
	return e.catalog
}
