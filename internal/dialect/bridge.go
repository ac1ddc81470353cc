package dialect

import (
	"fmt"
	"sort"

	"github.com/opensync/opensync/internal/mcp"
)

// Bridge command and package used to expose remote servers to stdio-only
// tools.
const (
	bridgeCommand = "npx"
	bridgePackage = "mcp-remote"
)

// bridgeAdapter handles stdio-only targets. Local records encode like the
// standard dialect; remote records are rewritten to spawn mcp-remote with
// the url and one --header flag per header entry.
//
// The bridge is write-only: Decode does not detect or reverse a bridged
// entry, so re-discovering a bridged target yields a local npx record. That
// asymmetry is intentional — the target file is the source of truth for
// what the tool will actually run.
type bridgeAdapter struct{}

func (bridgeAdapter) Decode(name string, raw map[string]any) *mcp.Server {
	return decodeStandard(name, raw)
}

func (bridgeAdapter) Encode(s *mcp.Server) map[string]any {
	if !s.IsRemote() {
		return encodeStandardLocal(s)
	}

	args := []string{bridgePackage, s.URL}
	for _, k := range sortedKeys(s.Headers) {
		args = append(args, "--header", fmt.Sprintf("%s: %s", k, s.Headers[k]))
	}

	return map[string]any{
		"command": bridgeCommand,
		"args":    args,
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
