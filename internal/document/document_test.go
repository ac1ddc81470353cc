package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/target"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Missing(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "nope.json"), target.FormatJSON)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if len(doc) != 0 {
		t.Errorf("doc = %v, want empty", doc)
	}
}

func TestLoad_Empty(t *testing.T) {
	for _, format := range []target.Format{target.FormatJSON, target.FormatYAML, target.FormatTOML} {
		path := write(t, "empty", "")
		doc, err := Load(path, format)
		if err != nil {
			t.Errorf("Load(empty %s) error = %v", format, err)
		}
		if len(doc) != 0 {
			t.Errorf("Load(empty %s) = %v, want empty", format, doc)
		}
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		format  target.Format
		content string
	}{
		{target.FormatJSON, `{"mcpServers": {`},
		{target.FormatYAML, "mcpServers:\n  bad\n    indent: [}"},
		{target.FormatTOML, "[mcp_servers\nbroken"},
	}

	for _, tt := range tests {
		path := write(t, "bad", tt.content)
		_, err := Load(path, tt.format)
		if err == nil {
			t.Errorf("Load(malformed %s) error = nil, want parse error", tt.format)
			continue
		}
		if !errors.Is(err, errors.ErrParse) {
			t.Errorf("Load(malformed %s) error = %v, want ErrParse", tt.format, err)
		}
	}
}

func TestLoadSave_JSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "mcp.json")

	doc := map[string]any{
		"mcpServers": map[string]any{
			"github": map[string]any{"command": "npx"},
		},
		"unrelated": "keep me",
	}
	if err := Save(path, target.FormatJSON, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path, target.FormatJSON)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded["unrelated"] != "keep me" {
		t.Errorf("unrelated key = %v, want preserved", loaded["unrelated"])
	}
	servers := ServerMapping(loaded, "mcpServers")
	if _, ok := servers["github"]; !ok {
		t.Errorf("server mapping = %v, missing github", servers)
	}
}

func TestLoadSave_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	doc := map[string]any{
		"mcpServers": map[string]any{"demo": map[string]any{"command": "uvx"}},
		"models":     []any{"gpt-x"},
	}
	if err := Save(path, target.FormatYAML, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path, target.FormatYAML)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(ServerMapping(loaded, "mcpServers")) != 1 {
		t.Errorf("server mapping = %v", loaded["mcpServers"])
	}
}

func TestLoadSave_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	doc := map[string]any{
		"model": "o4",
		"mcp_servers": map[string]any{
			"fs": map[string]any{"command": "npx", "args": []any{"-y", "pkg"}},
		},
	}
	if err := Save(path, target.FormatTOML, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path, target.FormatTOML)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded["model"] != "o4" {
		t.Errorf("sibling key model = %v, want preserved", loaded["model"])
	}
	if len(ServerMapping(loaded, "mcp_servers")) != 1 {
		t.Errorf("server mapping = %v", loaded["mcp_servers"])
	}
}

func TestServerMapping_WrongType(t *testing.T) {
	doc := map[string]any{"mcpServers": "not a mapping"}
	if m := ServerMapping(doc, "mcpServers"); len(m) != 0 {
		t.Errorf("ServerMapping = %v, want empty for wrong-typed root", m)
	}
	if m := ServerMapping(map[string]any{}, "mcpServers"); len(m) != 0 {
		t.Errorf("ServerMapping = %v, want empty for missing root", m)
	}
}
