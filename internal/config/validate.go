package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/opensync/opensync/internal/target"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidScope indicates an unrecognized default scope.
	ErrInvalidScope = errors.New("default_scope must be global or project")

	// ErrInvalidRetention indicates a negative backup retention.
	ErrInvalidRetention = errors.New("backup retention must be >= 0")

	// ErrUnknownTargetID indicates a target id not in the catalog.
	ErrUnknownTargetID = errors.New("unknown target id")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	switch cfg.DefaultScope {
	case "", string(target.ScopeGlobal), string(target.ScopeProject):
	default:
		errs = append(errs, ErrInvalidScope)
	}

	if cfg.Backup.Retention < 0 {
		errs = append(errs, ErrInvalidRetention)
	}

	known := target.DefaultCatalog()
	for _, id := range cfg.DisabledTargets {
		if _, ok := known.ByID(id); !ok {
			errs = append(errs, &TargetIDError{ID: id, Err: ErrUnknownTargetID})
		}
	}
	for id, path := range cfg.TargetPaths {
		if _, ok := known.ByID(id); !ok {
			errs = append(errs, &TargetIDError{ID: id, Err: ErrUnknownTargetID})
		}
		if err := validatePath(path); err != nil {
			errs = append(errs, &PathError{Field: "target_paths." + id, Path: path, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Null bytes are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// TargetIDError represents an error for a specific target id.
type TargetIDError struct {
	ID  string
	Err error
}

func (e *TargetIDError) Error() string {
	return e.Err.Error() + ": " + e.ID
}

func (e *TargetIDError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
