// Package paths provides path resolution for opensync's own state and for
// the home-relative config locations of the tools it syncs.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base
// Directory compliance. opensync keeps its application config under
// <ConfigHome>/opensync, the local server registry under
// <DataHome>/opensync, and snapshot sets under <DataHome>/opensync/backups.
//
// Target config files themselves are declared with ~-prefixed templates in
// the target catalog; [ExpandHome] resolves those against the current
// user's home directory.
package paths
