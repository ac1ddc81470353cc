package dialect

import "github.com/opensync/opensync/internal/mcp"

// standardAdapter handles the near-canonical entry shape:
// {command, args, env, type?, url?, headers?}.
//
// Encoding emits a "stdio" type only when the record carries it explicitly;
// it is never inferred from the presence of a command.
type standardAdapter struct{}

func (standardAdapter) Decode(name string, raw map[string]any) *mcp.Server {
	return decodeStandard(name, raw)
}

func (standardAdapter) Encode(s *mcp.Server) map[string]any {
	if s.IsRemote() {
		entry := map[string]any{"url": s.URL}
		if s.Type != "" {
			entry["type"] = s.Type
		}
		if len(s.Headers) > 0 {
			entry["headers"] = s.Headers
		}
		return entry
	}
	return encodeStandardLocal(s)
}

// decodeStandard reads the canonical field names out of a raw entry.
// Shared by the standard and bridge adapters.
func decodeStandard(name string, raw map[string]any) *mcp.Server {
	return &mcp.Server{
		Name:    name,
		Command: asString(raw["command"]),
		Args:    asStringSlice(raw["args"]),
		Env:     asStringMap(raw["env"]),
		Type:    asString(raw["type"]),
		URL:     asString(raw["url"]),
		Headers: asStringMap(raw["headers"]),
	}
}

// encodeStandardLocal emits the local half of the standard shape.
// Shared by the standard and bridge adapters.
func encodeStandardLocal(s *mcp.Server) map[string]any {
	entry := map[string]any{}
	if s.Command != "" {
		entry["command"] = s.Command
	}
	if len(s.Args) > 0 {
		entry["args"] = s.Args
	}
	if len(s.Env) > 0 {
		entry["env"] = s.Env
	}
	if s.Type == mcp.TypeStdio {
		entry["type"] = s.Type
	}
	return entry
}
