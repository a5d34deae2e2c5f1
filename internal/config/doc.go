// Package config loads, normalizes, and validates the iatv TOML
// configuration.
//
// Configuration sections by subsystem:
//   - Paths: cache and log directories
//   - Archive: archive.org endpoints and request timeout
//   - Captions: window width and fallback broadcast duration
//   - Logging: log format and level
//
// Load resolves ~/.config/iatv/config.toml (or a project-local iatv.toml),
// applies defaults for anything unset, expands paths, and rejects unusable
// values before any component sees the config.
package config
