package dialect

import "github.com/opensync/opensync/internal/mcp"

// typedRemoteAdapter handles the VS Code shape. Remote servers keep type,
// url, and headers as first-class siblings of the local fields; the type
// defaults to "http" when a url is present without an explicit type.
type typedRemoteAdapter struct{}

func (typedRemoteAdapter) Decode(name string, raw map[string]any) *mcp.Server {
	return decodeStandard(name, raw)
}

func (typedRemoteAdapter) Encode(s *mcp.Server) map[string]any {
	if s.IsRemote() {
		typ := s.Type
		if typ == "" {
			typ = mcp.TypeHTTP
		}
		entry := map[string]any{
			"type": typ,
			"url":  s.URL,
		}
		if len(s.Headers) > 0 {
			entry["headers"] = s.Headers
		}
		return entry
	}
	return encodeStandardLocal(s)
}
