// Package config loads, normalizes, and validates the TOML configuration for
// resumetailor. Values resolve in order: built-in defaults, the config file,
// then environment overrides.
package config
