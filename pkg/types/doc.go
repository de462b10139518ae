// Package types defines the core types shared across the hashdo registry.
//
// A pack is an installable package discovered as a directory under the
// cards root. It carries a package manifest and zero or more card
// definition documents. The registry indexes visible packs by key and
// their cards by card key.
package types
