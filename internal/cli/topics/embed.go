// Package topics holds the help topics compiled into the hashdo binary
package topics

import "embed"

// FS holds the markdown help topics
//
//go:embed *.md
var FS embed.FS
