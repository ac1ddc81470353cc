package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/mcp"
	"github.com/opensync/opensync/internal/target"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "servers.json"))
}

func TestStore_EmptyList(t *testing.T) {
	servers, err := newTestStore(t).List(target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 0 {
		t.Errorf("servers = %v, want none before first add", servers)
	}
}

func TestStore_AddAssignsID(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Add(&mcp.Server{Name: "github", Command: "npx", Args: []string{"-y", "gh-mcp"}}, target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID == "" {
		t.Error("new record has no id")
	}

	got, err := s.Get("github", target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != rec.ID || got.Command != "npx" {
		t.Errorf("stored record = %+v", got)
	}
}

func TestStore_AddUpsertsByNameScopeProject(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Add(&mcp.Server{Name: "github", Command: "npx"}, target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Add(&mcp.Server{Name: "github", Command: "docker", Args: []string{"run"}}, target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert changed id: %q then %q", first.ID, second.ID)
	}

	servers, err := s.List(target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 1 || servers[0].Command != "docker" {
		t.Errorf("servers = %+v, want single replaced record", servers)
	}
}

func TestStore_ScopesAreSeparate(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Add(&mcp.Server{Name: "github", Command: "npx"}, target.ScopeGlobal, ""); err != nil {
		t.Fatal(err)
	}

	servers, err := s.List(target.ScopeProject, "/work/app")
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 0 {
		t.Errorf("project list = %+v, global records must not leak into project scope", servers)
	}
	if _, err := s.Get("github", target.ScopeProject, "/work/app"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("project get err = %v, want ErrNotFound", err)
	}

	// The same name in another scope is its own record, not an upsert.
	proj, err := s.Add(&mcp.Server{Name: "github", Command: "docker"}, target.ScopeProject, "/work/app")
	if err != nil {
		t.Fatal(err)
	}
	global, err := s.Get("github", target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	if proj.ID == global.ID {
		t.Error("project and global records share an id")
	}
	if global.Command != "npx" {
		t.Errorf("global command = %q, project add must not touch it", global.Command)
	}
}

func TestStore_ProjectsAreSeparate(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Add(&mcp.Server{Name: "db", Command: "./db-mcp"}, target.ScopeProject, "/work/app"); err != nil {
		t.Fatal(err)
	}

	servers, err := s.List(target.ScopeProject, "/work/other")
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 0 {
		t.Errorf("other project list = %+v, want empty", servers)
	}

	existed, err := s.Remove("db", target.ScopeProject, "/work/other")
	if err != nil || existed {
		t.Fatalf("Remove in other project = %v, %v, want clean no-op", existed, err)
	}
	if _, err := s.Get("db", target.ScopeProject, "/work/app"); err != nil {
		t.Errorf("original record gone: %v", err)
	}
}

func TestStore_GlobalIgnoresProjectQualifier(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Add(&mcp.Server{Name: "github", Command: "npx"}, target.ScopeGlobal, "/work/app"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("github", target.ScopeGlobal, "/somewhere/else"); err != nil {
		t.Errorf("global record not found from another project dir: %v", err)
	}
}

func TestStore_AddRejectsEmptyName(t *testing.T) {
	_, err := newTestStore(t).Add(&mcp.Server{Name: "  "}, target.ScopeGlobal, "")
	if !errors.Is(err, errors.ErrMissingName) {
		t.Errorf("err = %v, want ErrMissingName", err)
	}
}

func TestStore_ListSorted(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := s.Add(&mcp.Server{Name: name, Command: "x"}, target.ScopeGlobal, ""); err != nil {
			t.Fatal(err)
		}
	}
	servers, err := s.List(target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, srv := range servers {
		names = append(names, srv.Name)
	}
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestStore_Remove(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add(&mcp.Server{Name: "github", Command: "npx"}, target.ScopeGlobal, ""); err != nil {
		t.Fatal(err)
	}

	existed, err := s.Remove("github", target.ScopeGlobal, "")
	if err != nil || !existed {
		t.Fatalf("Remove() = %v, %v", existed, err)
	}
	existed, err = s.Remove("github", target.ScopeGlobal, "")
	if err != nil || existed {
		t.Fatalf("second Remove() = %v, %v, want clean no-op", existed, err)
	}
}

func TestStore_Rename(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.Add(&mcp.Server{Name: "github", Command: "npx"}, target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Rename("github", "gh", target.ScopeGlobal, ""); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get("gh", target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != rec.ID {
		t.Errorf("rename changed id: %q then %q", rec.ID, got.ID)
	}
	if _, err := s.Get("github", target.ScopeGlobal, ""); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("old name lookup err = %v, want ErrNotFound", err)
	}
}

func TestStore_RenameConflict(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"a", "b"} {
		if _, err := s.Add(&mcp.Server{Name: name, Command: "x"}, target.ScopeGlobal, ""); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Rename("a", "b", target.ScopeGlobal, ""); err == nil {
		t.Error("err = nil, want conflict")
	}
}

func TestStore_RenameAcrossScopesNoConflict(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add(&mcp.Server{Name: "a", Command: "x"}, target.ScopeGlobal, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(&mcp.Server{Name: "b", Command: "x"}, target.ScopeProject, "/work/app"); err != nil {
		t.Fatal(err)
	}
	// "b" exists only in project scope, so the global rename is clean.
	if err := s.Rename("a", "b", target.ScopeGlobal, ""); err != nil {
		t.Errorf("err = %v, want cross-scope names not to conflict", err)
	}
}

func TestStore_RenameMissing(t *testing.T) {
	err := newTestStore(t).Rename("ghost", "gh", target.ScopeGlobal, "")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servers.json")
	if err := os.WriteFile(path, []byte(`{"records": [`), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := NewStore(path).List(target.ScopeGlobal, "")
	if !errors.Is(err, errors.ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestStore_DropsDiscoverySources(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.Add(&mcp.Server{Name: "github", Command: "npx", Sources: []string{"cursor_global"}}, target.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Sources) != 0 {
		t.Errorf("sources = %v, discovery attribution must not be persisted", rec.Sources)
	}
}
