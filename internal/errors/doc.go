// Package errors provides error handling conventions for the opensync CLI.
//
// It re-exports the cockroachdb/errors constructors used throughout the
// codebase, defines sentinel errors for the failure conditions the sync
// engine distinguishes, and an ExitError type carrying a process exit code.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific conditions with
// [errors.Is]:
//
//	if errors.Is(err, syncerrors.ErrUnknownTarget) {
//	    // caller passed a target id not in the catalog
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): user-related error (invalid input, unknown target, etc.)
//   - ExitSystem (2): system-related error (I/O, network, permissions)
package errors
