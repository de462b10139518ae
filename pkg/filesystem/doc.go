// Package filesystem provides filesystem implementations for hashdo.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem and an afero-backed filesystem used for tests.
package filesystem
