package dialect

import (
	"github.com/opensync/opensync/internal/mcp"
	"github.com/opensync/opensync/internal/target"
)

// Adapter converts between canonical server records and one dialect's raw
// entry shape. Raw entries are the JSON/YAML/TOML mapping values found under
// a target's root key.
type Adapter interface {
	// Decode converts a raw entry into a canonical record. The name is the
	// entry's map key in the target file.
	Decode(name string, raw map[string]any) *mcp.Server

	// Encode converts a canonical record into the dialect's raw entry.
	Encode(s *mcp.Server) map[string]any
}

// adapters is the closed dispatch table from dialect tag to implementation.
var adapters = map[target.Dialect]Adapter{
	target.DialectStandard:     standardAdapter{},
	target.DialectArrayCommand: arrayCommandAdapter{},
	target.DialectTypedRemote:  typedRemoteAdapter{},
	target.DialectBridge:       bridgeAdapter{},
}

// ForDialect returns the adapter for the given dialect tag.
// Unknown tags fall back to the standard adapter; the target catalog is the
// only source of dialect values, so this is a safety net, not an API.
func ForDialect(d target.Dialect) Adapter {
	if a, ok := adapters[d]; ok {
		return a
	}
	return standardAdapter{}
}
