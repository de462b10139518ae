// Package packs discovers and loads card packs from a cards directory.
//
// A pack is a directory whose name starts with the configured prefix
// (default "hashdo-") and which contains a package manifest
// (default "package.json") with a "pack" section. This package handles:
//
//   - Pack candidate discovery under the cards directory
//   - Manifest loading and pack key derivation
//   - Card definition file discovery within a pack
//   - Card definition decoding (JSON, YAML, TOML) and schema validation
//
// Directories without a manifest are not packs and are skipped silently.
// Everything else that goes wrong is returned as an error: a broken pack
// must stop the registry from being built.
package packs
