// Package config handles configuration management for hashdo.
// It layers embedded TOML defaults, an optional TOML config file,
// HASHDO_* environment variables and command-line overrides.
package config
