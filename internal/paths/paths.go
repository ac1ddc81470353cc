package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "opensync"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or an empty string if it cannot
// be determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ExpandHome resolves a leading "~" or "~/" prefix against the user's home
// directory. Paths without the prefix are returned unchanged. A bare "~"
// resolves to the home directory itself.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home := Home()
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	// "~user" syntax is not supported; leave it alone.
	return path
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
func DataHome() string {
	return xdg.DataHome
}

// CacheHome returns the XDG cache home directory.
func CacheHome() string {
	return xdg.CacheHome
}

// ConfigDir returns opensync's own config directory: <ConfigHome>/opensync.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// DataDir returns opensync's data directory: <DataHome>/opensync.
// The local server registry lives here.
func DataDir() string {
	return filepath.Join(DataHome(), AppName)
}

// RegistryPath returns the path of the local server registry store.
func RegistryPath() string {
	return filepath.Join(DataDir(), "servers.json")
}

// BackupDir returns the root directory for snapshot sets.
func BackupDir() string {
	return filepath.Join(DataDir(), "backups")
}
