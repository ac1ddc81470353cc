package backup

import (
	"io/fs"
	"time"

	"github.com/cockroachdb/errors"
)

// Manifest format version for forward compatibility.
const ManifestVersion = 1

// DefaultRetentionCount is the default number of snapshots to retain per
// scope.
const DefaultRetentionCount = 10

// Sentinel errors for snapshot operations.
var (
	// ErrNoSnapshotsFound indicates no snapshots exist for the scope.
	ErrNoSnapshotsFound = errors.New("no snapshots found")

	// ErrSnapshotCorrupted indicates snapshot integrity verification
	// failed: a file's SHA256 hash doesn't match the manifest.
	ErrSnapshotCorrupted = errors.New("snapshot corrupted")

	// ErrNothingToCapture indicates none of the requested paths exist yet.
	ErrNothingToCapture = errors.New("no files to capture")
)

// Manifest contains metadata about one snapshot.
// It is stored as manifest.json in each snapshot directory.
type Manifest struct {
	// Version is the manifest format version for forward compatibility.
	Version int `json:"version"`

	// CreatedAt is when the snapshot was taken.
	CreatedAt time.Time `json:"created_at"`

	// Scope is the synced scope the snapshot covers (global or project).
	Scope string `json:"scope"`

	// Files contains metadata for each captured file.
	Files []File `json:"files"`

	// ToolVersion is the opensync version that took the snapshot.
	ToolVersion string `json:"opensync_version"`

	// ID is the snapshot identifier (timestamp format: 20260823T100712).
	// Populated when loading from disk but not stored in JSON.
	ID string `json:"-"`
}

// File contains metadata for a single captured file.
type File struct {
	// OriginalPath is the absolute path where the file was located.
	OriginalPath string `json:"original_path"`

	// RelPath is the relative path within the snapshot directory.
	RelPath string `json:"rel_path"`

	// SHA256Hash is the hex-encoded SHA256 hash of the file contents.
	SHA256Hash string `json:"sha256_hash"`

	// Mode is the file's permission bits.
	Mode fs.FileMode `json:"mode"`
}
