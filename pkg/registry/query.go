package registry

import (
	"sort"

	"github.com/arthur-debert/hashdo/pkg/types"
)

// Count returns the number of cards whose name fuzzy-matches filter.
// The unfiltered total is computed once and memoized; filtered counts are
// computed on every call.
func (r *Registry) Count(filter string) int {
	if filter == "" {
		r.totalOnce.Do(func() {
			for _, pack := range r.packs {
				r.total += len(pack.Cards)
			}
		})
		return r.total
	}

	count := 0
	for _, pack := range r.packs {
		for _, card := range pack.Cards {
			if Match(filter, card.Name) {
				count++
			}
		}
	}
	return count
}

// Cards returns the summaries of cards whose name fuzzy-matches filter,
// sorted by pack key then card key.
func (r *Registry) Cards(filter string) []types.CardSummary {
	list := make([]types.CardSummary, 0)
	for _, pack := range r.packs {
		for _, card := range pack.Cards {
			if Match(filter, card.Name) {
				list = append(list, card.Summary())
			}
		}
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Pack != list[j].Pack {
			return list[i].Pack < list[j].Pack
		}
		return list[i].Card < list[j].Card
	})
	return list
}

// Card looks up a card by exact pack and card key. The returned card, its
// inputs included, is a copy; ok is false when either key is unknown.
func (r *Registry) Card(packKey, cardKey string) (*types.Card, bool) {
	pack, ok := r.packs[packKey]
	if !ok {
		return nil, false
	}
	found, ok := pack.Cards[cardKey]
	if !ok {
		return nil, false
	}
	c := *found
	c.Inputs = copyValue(found.Inputs)
	return &c, true
}

// copyValue deep-copies a decoded document value
func copyValue(v interface{}) interface{} {
	switch node := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(node))
		for k, val := range node {
			out[k] = copyValue(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(node))
		for i, val := range node {
			out[i] = copyValue(val)
		}
		return out
	default:
		return v
	}
}

// Packs returns the summaries of all indexed packs sorted by key
func (r *Registry) Packs() []types.PackSummary {
	list := make([]types.PackSummary, 0, len(r.packs))
	for _, pack := range r.packs {
		list = append(list, pack.Summary())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list
}

// CardKeys returns the card keys of a pack in ascending order, or nil when
// the pack is unknown
func (r *Registry) CardKeys(packKey string) []string {
	pack, ok := r.packs[packKey]
	if !ok {
		return nil
	}
	return pack.CardKeys()
}
