// Package config loads, normalizes, and validates chanlog configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CHANLOG_LEVEL. The Config type centralizes the logging knobs the CLI needs,
// so the default level, per-channel filters, and output destination are
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical formats, and clear validation errors.
package config
