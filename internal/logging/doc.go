// Package logging provides structured logging for the opensync CLI built on
// log/slog.
//
// The default handler produces human-readable, optionally colorized output
// for terminals. A JSON format is available for machine consumption.
// Attribute values that look like secrets (token-like env values, keys whose
// names suggest credentials) are masked before they hit the writer.
package logging
