package mcp

import (
	"reflect"
	"testing"
)

func TestServer_IsRemote_URLAuthoritative(t *testing.T) {
	tests := []struct {
		name       string
		server     Server
		wantRemote bool
		wantLocal  bool
	}{
		{
			name:       "url only",
			server:     Server{Name: "api", URL: "https://example.com/mcp"},
			wantRemote: true,
			wantLocal:  false,
		},
		{
			name:       "command only",
			server:     Server{Name: "fs", Command: "npx"},
			wantRemote: false,
			wantLocal:  true,
		},
		{
			name: "both set, url wins",
			server: Server{
				Name:    "weird",
				Command: "npx",
				URL:     "https://example.com/mcp",
			},
			wantRemote: true,
			wantLocal:  false,
		},
		{
			name:       "neither",
			server:     Server{Name: "empty"},
			wantRemote: false,
			wantLocal:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.server.IsRemote(); got != tt.wantRemote {
				t.Errorf("IsRemote() = %v, want %v", got, tt.wantRemote)
			}
			if got := tt.server.IsLocal(); got != tt.wantLocal {
				t.Errorf("IsLocal() = %v, want %v", got, tt.wantLocal)
			}
		})
	}
}

func TestServer_AddSource_NoDuplicates(t *testing.T) {
	s := &Server{Name: "demo"}
	s.AddSource("cursor_global")
	s.AddSource("vscode_global")
	s.AddSource("cursor_global")

	want := []string{"cursor_global", "vscode_global"}
	if !reflect.DeepEqual(s.Sources, want) {
		t.Errorf("Sources = %v, want %v", s.Sources, want)
	}
	if !s.HasSource("vscode_global") {
		t.Error("HasSource(vscode_global) = false, want true")
	}
	if s.HasSource("windsurf_global") {
		t.Error("HasSource(windsurf_global) = true, want false")
	}
}

func TestServer_Clone_Independent(t *testing.T) {
	orig := &Server{
		Name:    "github",
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-github"},
		Env:     map[string]string{"GITHUB_TOKEN": "x"},
		Headers: map[string]string{"Authorization": "Bearer x"},
		Sources: []string{"cursor_global"},
	}

	clone := orig.Clone()
	clone.Args[0] = "changed"
	clone.Env["GITHUB_TOKEN"] = "changed"
	clone.Sources[0] = "changed"

	if orig.Args[0] != "-y" {
		t.Error("Clone shares Args backing array")
	}
	if orig.Env["GITHUB_TOKEN"] != "x" {
		t.Error("Clone shares Env map")
	}
	if orig.Sources[0] != "cursor_global" {
		t.Error("Clone shares Sources backing array")
	}
}

func TestServer_Clone_Nil(t *testing.T) {
	var s *Server
	if s.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
