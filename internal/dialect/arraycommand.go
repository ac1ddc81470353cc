package dialect

import "github.com/opensync/opensync/internal/mcp"

// OpenCode's type discriminator values.
const (
	arrayCmdTypeLocal  = "local"
	arrayCmdTypeRemote = "remote"
)

// arrayCommandAdapter handles the OpenCode shape: command and args travel as
// one ordered list under "command", environment lives under "environment",
// and every entry carries an explicit local/remote discriminator.
type arrayCommandAdapter struct{}

func (arrayCommandAdapter) Decode(name string, raw map[string]any) *mcp.Server {
	s := &mcp.Server{
		Name:    name,
		Env:     asStringMap(raw["environment"]),
		Type:    asString(raw["type"]),
		URL:     asString(raw["url"]),
		Headers: asStringMap(raw["headers"]),
	}

	// Split [command, ...args] into head and tail.
	if cmd := asStringSlice(raw["command"]); len(cmd) > 0 {
		s.Command = cmd[0]
		if len(cmd) > 1 {
			s.Args = cmd[1:]
		}
	}

	return s
}

func (arrayCommandAdapter) Encode(s *mcp.Server) map[string]any {
	if s.IsRemote() {
		entry := map[string]any{
			"type": arrayCmdTypeRemote,
			"url":  s.URL,
		}
		if len(s.Headers) > 0 {
			entry["headers"] = s.Headers
		}
		return entry
	}

	// A record with neither command nor url still encodes to a valid
	// minimal local entry.
	cmd := []string{}
	if s.Command != "" {
		cmd = append(cmd, s.Command)
	}
	cmd = append(cmd, s.Args...)

	entry := map[string]any{
		"type":    arrayCmdTypeLocal,
		"command": cmd,
	}
	if len(s.Env) > 0 {
		entry["environment"] = s.Env
	}
	return entry
}
