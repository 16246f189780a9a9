// Package config loads, normalizes, and validates songsearch configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// SONGSEARCH_CATALOG_URL. The Config type centralizes every knob the CLI needs
// so the catalog endpoint, history journal, and logging are discovered in one
// pass.
package config
