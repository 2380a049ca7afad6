// Package services defines shared utilities consumed by the submission flow
// and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp submission IDs, stage names, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification (validation vs transport vs remote) consistent across
//     components.
//
// Use these helpers when wiring new flow logic so operational behaviour stays
// uniform across the pipeline.
package services
