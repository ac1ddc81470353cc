package mcp

import "maps"

// Transport type hints carried in a server's Type field. Dialects map these
// onto their own discriminators; an empty Type means "infer from fields".
const (
	TypeStdio  = "stdio"
	TypeLocal  = "local"
	TypeRemote = "remote"
	TypeHTTP   = "http"
	TypeSSE    = "sse"
)

// Server is the canonical representation of one MCP server definition.
//
// Name is the identity: merge and upsert operations match records by exact,
// case-sensitive Name within one scope. ID is set only for entries managed
// by the local registry; purely discovered records have none.
type Server struct {
	// ID is a stable opaque identifier, present only for registry-managed
	// entries.
	ID string `json:"id,omitempty"`

	// Name is the dialect's map key and the unique identity within one
	// scope+target read.
	Name string `json:"name"`

	// Command is the executable for locally spawned servers.
	Command string `json:"command,omitempty"`

	// Args are command-line arguments passed to Command.
	Args []string `json:"args,omitempty"`

	// Env contains environment variables for the server process.
	Env map[string]string `json:"env,omitempty"`

	// Type is the transport hint: "", stdio, local, remote, http, or sse.
	Type string `json:"type,omitempty"`

	// URL is set when the server is network-reachable rather than spawned.
	URL string `json:"url,omitempty"`

	// Headers contains HTTP headers for remote transports.
	Headers map[string]string `json:"headers,omitempty"`

	// Sources is the set of target ids that contributed this record during
	// discovery. No duplicates; order carries no meaning.
	Sources []string `json:"sources,omitempty"`
}

// IsRemote returns true if the server is network-reachable. URL presence is
// authoritative: a record with both URL and Command set is still remote.
func (s *Server) IsRemote() bool {
	return s.URL != ""
}

// IsLocal returns true if the server is spawned as a local process.
func (s *Server) IsLocal() bool {
	return s.URL == "" && s.Command != ""
}

// AddSource appends a target id to Sources if not already present.
func (s *Server) AddSource(id string) {
	for _, src := range s.Sources {
		if src == id {
			return
		}
	}
	s.Sources = append(s.Sources, id)
}

// HasSource reports whether the given target id contributed this record.
func (s *Server) HasSource(id string) bool {
	for _, src := range s.Sources {
		if src == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the server.
func (s *Server) Clone() *Server {
	if s == nil {
		return nil
	}
	out := *s
	if s.Args != nil {
		out.Args = append([]string(nil), s.Args...)
	}
	if s.Env != nil {
		out.Env = maps.Clone(s.Env)
	}
	if s.Headers != nil {
		out.Headers = maps.Clone(s.Headers)
	}
	if s.Sources != nil {
		out.Sources = append([]string(nil), s.Sources...)
	}
	return &out
}
