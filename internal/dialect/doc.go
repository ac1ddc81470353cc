// Package dialect translates between the canonical server record and the
// per-target entry shapes.
//
// Each [Adapter] is a pure value mapping: Decode turns one raw entry from a
// target file into a canonical record, Encode does the reverse. Adapters
// never touch the filesystem and never fail; malformed values inside an
// entry are coerced or dropped, and non-mapping entries are skipped by the
// caller before Decode is reached.
//
// Dispatch is a closed table keyed by target.Dialect. Adding a dialect is
// one new constant in the target package plus one adapter here.
package dialect
