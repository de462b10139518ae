package registry_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/arthur-debert/hashdo/pkg/registry"
	"github.com/arthur-debert/hashdo/pkg/testutil"
	"github.com/arthur-debert/hashdo/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newQueryRegistry builds a registry with three packs and six cards
func newQueryRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	tree := testutil.NewCardsTree(t)
	tree.AddPack("weather", "Weather").
		AddNamedCard("week", "This Week").
		AddNamedCard("today", "Today's Weather").
		AddNamedCard("radar", "Rain Radar")
	tree.AddPack("news", "News").
		AddNamedCard("headlines", "Top Headlines").
		AddNamedCard("tech", "Tech News")
	tree.AddPack("agenda", "Agenda").
		AddNamedCard("today", "Today's Agenda")
	tree.AddHiddenPack("secret", "Secret").
		AddNamedCard("today", "Today's Secret")

	reg, err := registry.Build(registry.Options{
		BaseURL:  "https://example.com",
		CardsDir: tree.Root,
		FS:       tree.FS(),
	})
	require.NoError(t, err)
	return reg
}

func TestCount(t *testing.T) {
	reg := newQueryRegistry(t)

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{"no_filter", "", 6},
		{"fuzzy_today", "tdy", 2},
		{"case_insensitive", "TODAY", 2},
		{"subsequence_across_words", "tw", 3},
		{"no_match", "zzz", 0},
		{"hidden_cards_never_counted", "secret", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.Count(tt.filter))
		})
	}
}

func TestCountFilteredAfterUnfiltered(t *testing.T) {
	reg := newQueryRegistry(t)

	require.Equal(t, 6, reg.Count(""))
	assert.Equal(t, 1, reg.Count("radar"), "memoized total must not leak into filtered counts")
	assert.Equal(t, 6, reg.Count(""))
}

func TestCountConcurrent(t *testing.T) {
	reg := newQueryRegistry(t)

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = reg.Count("")
			} else {
				results[i] = reg.Count("news")
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if i%2 == 0 {
			assert.Equal(t, 6, got)
		} else {
			assert.Equal(t, 1, got)
		}
	}
}

func TestCards(t *testing.T) {
	reg := newQueryRegistry(t)

	t.Run("unfiltered_is_sorted_by_pack_then_card", func(t *testing.T) {
		cards := reg.Cards("")

		var keys [][2]string
		for _, c := range cards {
			keys = append(keys, [2]string{c.Pack, c.Card})
		}
		assert.Equal(t, [][2]string{
			{"agenda", "today"},
			{"news", "headlines"},
			{"news", "tech"},
			{"weather", "radar"},
			{"weather", "today"},
			{"weather", "week"},
		}, keys)
		assert.Len(t, cards, reg.Count(""))
	})

	t.Run("summaries_carry_listing_fields", func(t *testing.T) {
		cards := reg.Cards("radar")
		assert.Equal(t, []types.CardSummary{{
			Pack:        "weather",
			Card:        "radar",
			Name:        "Rain Radar",
			Description: "",
			Icon:        "https://example.com/weather/radar/icon.png",
		}}, cards)
	})

	t.Run("filtered_is_subset_of_matching_names", func(t *testing.T) {
		all := reg.Cards("")
		filtered := reg.Cards("tdy")

		require.Len(t, filtered, 2)
		for _, c := range filtered {
			assert.True(t, registry.Match("tdy", c.Name))
			assert.Contains(t, all, c)
		}
		for _, c := range all {
			if registry.Match("tdy", c.Name) {
				assert.Contains(t, filtered, c)
			}
		}
		assert.True(t, sort.SliceIsSorted(filtered, func(i, j int) bool {
			return filtered[i].Pack < filtered[j].Pack
		}))
	})

	t.Run("no_match_is_empty_not_nil", func(t *testing.T) {
		cards := reg.Cards("zzz")
		assert.NotNil(t, cards)
		assert.Empty(t, cards)
	})

	t.Run("hidden_cards_never_listed", func(t *testing.T) {
		for _, c := range reg.Cards("") {
			assert.NotEqual(t, "secret", c.Pack)
		}
	})
}

func TestCard(t *testing.T) {
	reg := newQueryRegistry(t)

	t.Run("found", func(t *testing.T) {
		for _, summary := range reg.Cards("") {
			card, ok := reg.Card(summary.Pack, summary.Card)
			require.True(t, ok)
			assert.Equal(t, summary.Pack, card.Pack)
			assert.Equal(t, summary.Card, card.Card)
			assert.Equal(t, "https://example.com/"+summary.Pack+"/"+summary.Card, card.BaseURL)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		tests := []struct{ pack, card string }{
			{"weather", "tomorrow"},
			{"sports", "today"},
			{"secret", "today"},
			{"", ""},
		}
		for _, tt := range tests {
			card, ok := reg.Card(tt.pack, tt.card)
			assert.False(t, ok, "%s/%s", tt.pack, tt.card)
			assert.Nil(t, card)
		}
	})

	t.Run("returns_a_copy", func(t *testing.T) {
		card, ok := reg.Card("weather", "today")
		require.True(t, ok)
		card.Name = "changed"

		again, _ := reg.Card("weather", "today")
		assert.Equal(t, "Today's Weather", again.Name)
	})

	t.Run("inputs_are_copied", func(t *testing.T) {
		tree := testutil.NewCardsTree(t)
		tree.AddPack("weather", "Weather").AddCard("week", map[string]interface{}{
			"name":   "This Week",
			"inputs": map[string]interface{}{"city": map[string]interface{}{"type": "string"}, "days": []interface{}{"mon"}},
		})
		withInputs, err := registry.Build(registry.Options{BaseURL: "https://example.com", CardsDir: tree.Root, FS: tree.FS()})
		require.NoError(t, err)

		card, ok := withInputs.Card("weather", "week")
		require.True(t, ok)
		inputs := card.Inputs.(map[string]interface{})
		inputs["city"].(map[string]interface{})["type"] = "number"
		inputs["days"].([]interface{})[0] = "tue"
		inputs["extra"] = true

		again, _ := withInputs.Card("weather", "week")
		assert.Equal(t, map[string]interface{}{
			"city": map[string]interface{}{"type": "string"},
			"days": []interface{}{"mon"},
		}, again.Inputs)
	})
}

func TestEmptyRegistry(t *testing.T) {
	tree := testutil.NewCardsTree(t)
	reg, err := registry.Build(registry.Options{BaseURL: "https://example.com", CardsDir: tree.Root, FS: tree.FS()})
	require.NoError(t, err)

	assert.Equal(t, 0, reg.Count(""))
	assert.Equal(t, 0, reg.Count("x"))
	assert.Empty(t, reg.Cards(""))
	assert.Empty(t, reg.Packs())
	assert.Equal(t, registry.Stats{}, reg.Stats())
}

func TestCardKeys(t *testing.T) {
	reg := newQueryRegistry(t)

	assert.Equal(t, []string{"radar", "today", "week"}, reg.CardKeys("weather"))
	assert.Equal(t, []string{"today"}, reg.CardKeys("agenda"))
	assert.Nil(t, reg.CardKeys("secret"))
	assert.Nil(t, reg.CardKeys("missing"))
}
