// Package commands implements the operations behind the hashdo CLI.
//
// Each command builds a registry from the given configuration, runs one
// query against it and returns a result type from pkg/types that pkg/ui
// knows how to render. Commands never print.
package commands
