// Package registry persists user-managed server definitions independently
// of any tool config. Registry entries survive a tool removing or mangling
// its own config and are merged into discovery as an extra source.
package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/mcp"
	"github.com/opensync/opensync/internal/paths"
	"github.com/opensync/opensync/internal/target"
	"github.com/opensync/opensync/pkg/fileutil"
)

// SourceTag attributes registry-managed records in discovery output.
const SourceTag = "opensync"

// Record is one stored server together with the scope it belongs to.
// Identity is (name, scope, project): the same name may exist globally and
// in any number of projects without colliding.
type Record struct {
	Server  *mcp.Server  `json:"server"`
	Scope   target.Scope `json:"scope"`
	Project string       `json:"project,omitempty"`
}

// Store is a JSON file of scoped server records. Every operation reads the
// file fresh and writes it back atomically, so concurrent processes see a
// consistent file even if they race on content.
type Store struct {
	path string
}

// NewStore opens a store backed by the given file. The file need not exist
// yet; the first Add creates it.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Default opens the store at its standard data-directory location.
func Default() *Store {
	return NewStore(paths.RegistryPath())
}

type storeFile struct {
	Records []*Record `json:"records"`
}

// normalizeProject strips the project qualifier for global-scope records so
// the same global record is found regardless of the caller's project dir.
func normalizeProject(scope target.Scope, project string) string {
	if scope != target.ScopeProject {
		return ""
	}
	return project
}

func (r *Record) matches(name string, scope target.Scope, project string) bool {
	return r.Server.Name == name &&
		r.Scope == scope &&
		r.Project == normalizeProject(scope, project)
}

func (s *Store) load() (*storeFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &storeFile{}, nil
		}
		return nil, errors.Wrapf(err, "reading registry %s", s.path)
	}
	if len(data) == 0 {
		return &storeFile{}, nil
	}
	var f storeFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(errors.ErrParse, "parsing registry %s: %v", s.path, err)
	}
	return &f, nil
}

func (s *Store) save(f *storeFile) error {
	sort.Slice(f.Records, func(i, j int) bool {
		a, b := f.Records[i], f.Records[j]
		if a.Server.Name != b.Server.Name {
			return a.Server.Name < b.Server.Name
		}
		if a.Scope != b.Scope {
			return a.Scope < b.Scope
		}
		return a.Project < b.Project
	})
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrapf(err, "creating registry directory")
	}
	return fileutil.AtomicWriteJSONWithPerm(s.path, f, 0o600)
}

// List returns the servers stored for one scope, sorted by name. Project
// scope only returns records added under the same project dir.
func (s *Store) List(scope target.Scope, project string) ([]*mcp.Server, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	project = normalizeProject(scope, project)
	var out []*mcp.Server
	for _, rec := range f.Records {
		if rec.Scope == scope && rec.Project == project {
			out = append(out, rec.Server)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Tag returns the source attribution for registry records.
func (s *Store) Tag() string {
	return SourceTag
}

// Get returns the server stored under (name, scope, project).
func (s *Store) Get(name string, scope target.Scope, project string) (*mcp.Server, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range f.Records {
		if rec.matches(name, scope, project) {
			return rec.Server, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "server %q", name)
}

// GetByID returns the server with the given id, in whichever scope it lives.
func (s *Store) GetByID(id string) (*mcp.Server, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range f.Records {
		if rec.Server.ID == id {
			return rec.Server, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "server id %q", id)
}

// Add upserts a server under (name, scope, project). An existing record
// keeps its id; a new one is assigned a fresh uuid. The stored server is
// returned.
func (s *Store) Add(srv *mcp.Server, scope target.Scope, project string) (*mcp.Server, error) {
	if strings.TrimSpace(srv.Name) == "" {
		return nil, errors.ErrMissingName
	}
	f, err := s.load()
	if err != nil {
		return nil, err
	}

	stored := srv.Clone()
	stored.Sources = nil
	project = normalizeProject(scope, project)
	for _, rec := range f.Records {
		if rec.matches(stored.Name, scope, project) {
			stored.ID = rec.Server.ID
			rec.Server = stored
			return stored, s.save(f)
		}
	}
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	f.Records = append(f.Records, &Record{Server: stored, Scope: scope, Project: project})
	return stored, s.save(f)
}

// Remove deletes the record under (name, scope, project) and reports
// whether it existed.
func (s *Store) Remove(name string, scope target.Scope, project string) (bool, error) {
	f, err := s.load()
	if err != nil {
		return false, err
	}
	for i, rec := range f.Records {
		if rec.matches(name, scope, project) {
			f.Records = append(f.Records[:i], f.Records[i+1:]...)
			return true, s.save(f)
		}
	}
	return false, nil
}

// Rename changes a stored server's name in place within its scope, keeping
// its id. The new name must not collide with another record in the same
// (scope, project).
func (s *Store) Rename(oldName, newName string, scope target.Scope, project string) error {
	if strings.TrimSpace(newName) == "" {
		return errors.ErrMissingName
	}
	f, err := s.load()
	if err != nil {
		return err
	}
	var found *Record
	for _, rec := range f.Records {
		if rec.matches(newName, scope, project) {
			return errors.Newf("server %q already exists", newName)
		}
		if rec.matches(oldName, scope, project) {
			found = rec
		}
	}
	if found == nil {
		return errors.Wrapf(errors.ErrNotFound, "server %q", oldName)
	}
	found.Server.Name = newName
	return s.save(f)
}
