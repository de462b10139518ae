package commands

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/registry"
)

const (
	maxSuggestions  = 3
	maxEditDistance = 2
)

// suggest returns the candidates closest to want: fuzzy subsequence matches
// first, best ranked first, then near misses by edit distance
func suggest(want string, candidates []string) []string {
	if want == "" || len(candidates) == 0 {
		return nil
	}

	ranks := fuzzy.RankFindFold(want, candidates)
	sort.Sort(ranks)

	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] && len(out) < maxSuggestions {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, rank := range ranks {
		add(rank.Target)
	}

	lower := strings.ToLower(want)
	for _, candidate := range candidates {
		if fuzzy.LevenshteinDistance(lower, strings.ToLower(candidate)) <= maxEditDistance {
			add(candidate)
		}
	}
	return out
}

// cardNotFound builds the ErrNotFound for a failed lookup, naming the
// nearest existing cards when there are any
func cardNotFound(reg *registry.Registry, packKey, cardKey string) error {
	var suggestions []string
	if keys := reg.CardKeys(packKey); keys != nil {
		for _, key := range suggest(cardKey, keys) {
			suggestions = append(suggestions, packKey+"/"+key)
		}
	} else {
		var packKeys []string
		for _, pack := range reg.Packs() {
			packKeys = append(packKeys, pack.Key)
		}
		for _, key := range suggest(packKey, packKeys) {
			suggestions = append(suggestions, key+"/"+cardKey)
		}
	}

	err := errors.Newf(errors.ErrNotFound, "card %s/%s not found", packKey, cardKey).
		WithDetail("pack", packKey).
		WithDetail("card", cardKey)
	if len(suggestions) > 0 {
		err.Message += "; did you mean " + strings.Join(suggestions, ", ") + "?"
		err.WithDetail("suggestions", suggestions)
	}
	return err
}
