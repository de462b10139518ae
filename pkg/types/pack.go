package types

import (
	"path/filepath"
	"sort"
)

// Manifest is the subset of a pack's package manifest the registry reads
type Manifest struct {
	// Name is the distribution name, e.g. "hashdo-weather"
	Name string `json:"name"`

	// Pack is nil when the package is not a content pack
	Pack *PackInfo `json:"pack,omitempty"`
}

// PackInfo is the "pack" section of a manifest
type PackInfo struct {
	FriendlyName string `json:"friendlyName"`
	Hidden       bool   `json:"hidden,omitempty"`
}

// Pack represents a visible, indexed pack and its cards
type Pack struct {
	// Key is the manifest name with the naming prefix removed
	Key string

	// Name is the human-readable pack name
	Name string

	// Path is the directory the pack was loaded from
	Path string

	// Cards maps card keys to cards
	Cards map[string]*Card
}

// CardKeys returns the pack's card keys in ascending order
func (p *Pack) CardKeys() []string {
	keys := make([]string, 0, len(p.Cards))
	for key := range p.Cards {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Summary returns the listing view of the pack
func (p *Pack) Summary() PackSummary {
	return PackSummary{
		Key:   p.Key,
		Name:  p.Name,
		Cards: len(p.Cards),
	}
}

// GetFilePath returns the full path to a file within the pack
func (p *Pack) GetFilePath(filename string) string {
	return filepath.Join(p.Path, filename)
}

// PackSummary is the listing view of a pack
type PackSummary struct {
	Key   string `json:"pack"`
	Name  string `json:"name"`
	Cards int    `json:"cards"`
}
