package registry

import (
	"sync"

	"github.com/arthur-debert/hashdo/pkg/types"
)

// Stats are the counters collected while building a Registry
type Stats struct {
	// Packs counts valid packs found, hidden ones included
	Packs int `json:"packs"`

	// Cards counts cards loaded from visible packs
	Cards int `json:"cards"`

	// Hidden counts valid packs left out of the index
	Hidden int `json:"hidden"`

	// Skipped counts manifests without a pack section
	Skipped int `json:"skipped"`
}

// Registry is the read-only index of visible packs and their cards
type Registry struct {
	packs map[string]*types.Pack
	stats Stats

	// total memoizes the unfiltered card count
	totalOnce sync.Once
	total     int
}

func newRegistry() *Registry {
	return &Registry{packs: make(map[string]*types.Pack)}
}

// Stats returns the counters collected while building the registry
func (r *Registry) Stats() Stats {
	return r.stats
}
