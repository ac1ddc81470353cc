package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/opensync/opensync/internal/paths"
	"github.com/opensync/opensync/pkg/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Manager handles snapshot creation, restoration, and retention.
type Manager struct {
	rootDir        string
	retentionCount int
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the root snapshot directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		m.rootDir = dir
	}
}

// WithRetentionCount sets the number of snapshots to retain per scope.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// NewManager creates a new snapshot Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir:        paths.BackupDir(),
		retentionCount: DefaultRetentionCount,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RetentionCount returns the configured per-scope retention.
func (m *Manager) RetentionCount() int {
	return m.retentionCount
}

// Snapshot captures the given files for a scope. Paths that do not exist
// are skipped; capturing nothing is an error. Each file is copied with
// preserved permissions and recorded with a SHA256 hash for later
// verification.
func (m *Manager) Snapshot(scope string, filePaths []string) (*Manifest, error) {
	if scope == "" {
		return nil, errors.New("scope is required")
	}
	if len(filePaths) == 0 {
		return nil, errors.New("at least one path is required")
	}

	snapshotID, snapshotPath, err := m.newSnapshotDir(scope)
	if err != nil {
		return nil, err
	}

	var files []File
	for _, p := range filePaths {
		expanded := paths.ExpandHome(p)

		info, err := os.Stat(expanded)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "stat %s", p)
		}
		if info.IsDir() {
			continue
		}

		f, err := m.snapshotFile(expanded, snapshotPath)
		if err != nil {
			return nil, errors.Wrapf(err, "capturing %s", p)
		}
		files = append(files, *f)
	}

	if len(files) == 0 {
		os.RemoveAll(snapshotPath)
		return nil, ErrNothingToCapture
	}

	manifest := &Manifest{
		Version:     ManifestVersion,
		CreatedAt:   time.Now().UTC(),
		Scope:       scope,
		Files:       files,
		ToolVersion: Version,
		ID:          snapshotID,
	}

	manifestPath := filepath.Join(snapshotPath, "manifest.json")
	if err := fileutil.AtomicWriteJSON(manifestPath, manifest); err != nil {
		return nil, errors.Wrap(err, "writing manifest")
	}

	return manifest, nil
}

// newSnapshotDir allocates a fresh timestamped directory. Two snapshots in
// the same second get numeric suffixes instead of sharing a directory.
func (m *Manager) newSnapshotDir(scope string) (string, string, error) {
	base := time.Now().Format("20060102T150405")
	for i := 0; ; i++ {
		id := base
		if i > 0 {
			id = fmt.Sprintf("%s_%d", base, i)
		}
		path := m.snapshotPath(scope, id)
		err := os.MkdirAll(filepath.Dir(path), 0o755)
		if err != nil {
			return "", "", errors.Wrap(err, "creating snapshot directory")
		}
		if err := os.Mkdir(path, 0o755); err != nil {
			if os.IsExist(err) {
				continue
			}
			return "", "", errors.Wrap(err, "creating snapshot directory")
		}
		return id, path, nil
	}
}

// snapshotFile copies a single file into the snapshot directory.
func (m *Manager) snapshotFile(src, snapshotPath string) (*File, error) {
	relPath := generateRelPath(src)
	dst := filepath.Join(snapshotPath, relPath)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating parent directory")
	}

	hash, mode, err := copyFile(src, dst)
	if err != nil {
		return nil, err
	}

	return &File{
		OriginalPath: src,
		RelPath:      relPath,
		SHA256Hash:   hash,
		Mode:         mode,
	}, nil
}

// Restore puts every file from a snapshot back at its original location.
// Integrity is verified against the manifest before anything is written.
func (m *Manager) Restore(scope, snapshotID string) error {
	if scope == "" {
		return errors.New("scope is required")
	}
	if snapshotID == "" {
		return errors.New("snapshot ID is required")
	}

	manifest, err := m.Get(scope, snapshotID)
	if err != nil {
		return err
	}

	snapshotPath := m.snapshotPath(scope, snapshotID)

	// Verify everything first so a corrupt snapshot aborts with no files
	// half-restored.
	for _, f := range manifest.Files {
		srcPath := filepath.Join(snapshotPath, f.RelPath)
		hash, err := hashFile(srcPath)
		if err != nil {
			return errors.Wrapf(err, "reading snapshot file %s", f.RelPath)
		}
		if hash != f.SHA256Hash {
			return errors.Wrapf(ErrSnapshotCorrupted, "file %s hash mismatch", f.RelPath)
		}
	}

	for _, f := range manifest.Files {
		srcPath := filepath.Join(snapshotPath, f.RelPath)

		if err := os.MkdirAll(filepath.Dir(f.OriginalPath), 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %s", f.OriginalPath)
		}
		if _, _, err := copyFile(srcPath, f.OriginalPath); err != nil {
			return errors.Wrapf(err, "restoring %s", f.OriginalPath)
		}
		if err := os.Chmod(f.OriginalPath, f.Mode); err != nil {
			return errors.Wrapf(err, "setting permissions for %s", f.OriginalPath)
		}
	}

	return nil
}

// List returns all snapshots for a scope, sorted by date (newest first).
func (m *Manager) List(scope string) ([]Manifest, error) {
	if scope == "" {
		return nil, errors.New("scope is required")
	}

	scopeDir := m.scopeDir(scope)
	entries, err := os.ReadDir(scopeDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshotsFound
		}
		return nil, errors.Wrap(err, "reading snapshot directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(scope, entry.Name())
		if err != nil {
			// Skip invalid snapshot directories
			continue
		}
		manifests = append(manifests, *manifest)
	}

	if len(manifests) == 0 {
		return nil, ErrNoSnapshotsFound
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		if a.CreatedAt.After(b.CreatedAt) {
			return -1
		}
		if a.CreatedAt.Before(b.CreatedAt) {
			return 1
		}
		return strings.Compare(b.ID, a.ID)
	})

	return manifests, nil
}

// Prune removes old snapshots beyond the retention count, keeping the most
// recent 'keep' per scope.
func (m *Manager) Prune(scope string, keep int) error {
	if scope == "" {
		return errors.New("scope is required")
	}
	if keep < 0 {
		return errors.New("keep must be non-negative")
	}

	manifests, err := m.List(scope)
	if err != nil {
		if errors.Is(err, ErrNoSnapshotsFound) {
			return nil
		}
		return err
	}

	for i := keep; i < len(manifests); i++ {
		snapshotPath := m.snapshotPath(scope, manifests[i].ID)
		if err := os.RemoveAll(snapshotPath); err != nil {
			return errors.Wrapf(err, "removing snapshot %s", manifests[i].ID)
		}
	}

	return nil
}

// Get returns the manifest for a specific snapshot.
func (m *Manager) Get(scope, snapshotID string) (*Manifest, error) {
	if scope == "" {
		return nil, errors.New("scope is required")
	}
	if snapshotID == "" {
		return nil, errors.New("snapshot ID is required")
	}

	manifestPath := filepath.Join(m.snapshotPath(scope, snapshotID), "manifest.json")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoSnapshotsFound, "snapshot %s not found", snapshotID)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}

	manifest.ID = snapshotID
	return &manifest, nil
}

func (m *Manager) snapshotPath(scope, snapshotID string) string {
	return filepath.Join(m.scopeDir(scope), snapshotID)
}

func (m *Manager) scopeDir(scope string) string {
	return filepath.Join(m.rootDir, scope)
}

// hashFile computes the SHA256 hash of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening file")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "reading file")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// copyFile copies a file from src to dst, returning the SHA256 hash and
// mode. The destination ends up with the source's permissions.
func copyFile(src, dst string) (hash string, mode fs.FileMode, err error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return "", 0, errors.Wrap(err, "opening source file")
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return "", 0, errors.Wrap(err, "stat source file")
	}
	mode = srcInfo.Mode()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, errors.Wrap(err, "creating destination file")
	}

	h := sha256.New()
	w := io.MultiWriter(dstFile, h)
	if _, err := io.Copy(w, srcFile); err != nil {
		dstFile.Close()
		return "", 0, errors.Wrap(err, "copying file")
	}
	if err := dstFile.Close(); err != nil {
		return "", 0, errors.Wrap(err, "closing destination file")
	}
	if err := os.Chmod(dst, mode); err != nil {
		return "", 0, errors.Wrap(err, "setting permissions")
	}

	return hex.EncodeToString(h.Sum(nil)), mode, nil
}

// generateRelPath creates a relative path for storage in the snapshot
// directory. Leading separators and drive colons are stripped so the result
// is a valid relative path on every platform.
func generateRelPath(absPath string) string {
	clean := filepath.Clean(absPath)
	clean = strings.ReplaceAll(clean, ":", "")
	clean = strings.TrimPrefix(clean, string(filepath.Separator))
	return clean
}
