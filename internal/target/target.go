package target

import (
	"path/filepath"

	"github.com/opensync/opensync/internal/paths"
)

// Scope distinguishes user-wide configs from project-relative ones.
type Scope string

const (
	// ScopeGlobal is a user-wide config at a fixed path (usually under ~).
	ScopeGlobal Scope = "global"

	// ScopeProject is a config resolved against a chosen project directory.
	ScopeProject Scope = "project"
)

// Dialect identifies how a target represents one server entry.
// Dispatch happens through the adapter table in internal/dialect; adding a
// dialect means one new constant there plus one adapter implementation.
type Dialect string

const (
	// DialectStandard is the near-canonical shape:
	// {command, args, env, type?, url?, headers?}.
	DialectStandard Dialect = "standard"

	// DialectArrayCommand carries command and args as one ordered list under
	// "command", env under "environment", and a local/remote discriminator
	// (OpenCode).
	DialectArrayCommand Dialect = "array-command"

	// DialectTypedRemote keeps type/url/headers first-class for remote
	// servers, with type defaulting to "http" when a url is present
	// (VS Code).
	DialectTypedRemote Dialect = "typed-remote"

	// DialectBridge is the standard shape for stdio-only tools: remote
	// servers are rewritten to an "npx mcp-remote" invocation on encode.
	DialectBridge Dialect = "bridge"
)

// Format identifies the document encoding wrapped around the server mapping.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Category groups targets for presentation.
type Category string

const (
	CategoryEditor  Category = "editor"
	CategoryDesktop Category = "desktop"
	CategoryCLI     Category = "cli"
	CategoryPlugin  Category = "plugin"
)

// Target describes one configuration file location and its dialect.
// Targets are immutable after construction and are looked up by ID, never
// built from user input.
type Target struct {
	// ID uniquely identifies the target: "<tool>_<scope>".
	ID string

	// Tool is the base tool identifier shared by a tool's global and
	// project targets.
	Tool string

	// Label is the human-readable tool name.
	Label string

	// Scope is global or project.
	Scope Scope

	// Dialect selects the format adapter for entries under RootKey.
	Dialect Dialect

	// Format is the document encoding of the whole file.
	Format Format

	// RootKey is the top-level field holding the server mapping.
	RootKey string

	// Nested marks targets whose root key lives inside a larger settings
	// file alongside unrelated keys.
	Nested bool

	// Path is the file path template: ~-prefixed for global scope,
	// relative to the project root for project scope.
	Path string

	// ReadOnly marks discovery-only targets that reject writes.
	ReadOnly bool

	// Category groups the target for presentation.
	Category Category
}

// ResolvePath returns the concrete filesystem path for the target.
// Global paths have their ~ prefix expanded; project paths are joined with
// projectDir. A project target with an empty projectDir resolves relative
// to the current working directory, matching how project-scope tools find
// their own configs.
func (t *Target) ResolvePath(projectDir string) string {
	if t.Scope == ScopeProject {
		if projectDir == "" {
			return t.Path
		}
		return filepath.Join(projectDir, t.Path)
	}
	return paths.ExpandHome(t.Path)
}
