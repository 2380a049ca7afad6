// Package logging centralizes slog construction and the attribute vocabulary
// shared across the submission flow. Console output favors a compact
// human-readable line format; JSON output is available for scripting.
package logging
