// Package artifact owns the downloadable result of a successful generation:
// creation from response bytes, export to disk, and deterministic release
// when superseded or when the session resets. At most one artifact is live at
// any time and it is never released while an export is in progress.
package artifact
