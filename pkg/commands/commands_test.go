package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/hashdo/pkg/commands"
	"github.com/arthur-debert/hashdo/pkg/config"
	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/testutil"
)

func setupCards(t *testing.T) commands.RegistryOptions {
	t.Helper()

	tree := testutil.NewCardsTree(t)
	tree.AddPack("weather", "Weather").
		AddNamedCard("today", "Today").
		AddNamedCard("week", "This Week")
	tree.AddPack("news", "News").
		AddCard("headlines", map[string]interface{}{
			"name":        "Headlines",
			"description": "Top stories",
		})
	tree.AddHiddenPack("secret", "Secret").
		AddNamedCard("x", "Hidden")

	cfg := config.Default()
	cfg.BaseURL = "https://cards.example.com/"
	cfg.CardsDir = tree.Root

	return commands.RegistryOptions{Config: cfg, FS: tree.FS()}
}

func TestCountCards(t *testing.T) {
	opts := setupCards(t)

	tests := []struct {
		name     string
		filter   string
		expected int
	}{
		{name: "all cards", filter: "", expected: 3},
		{name: "fuzzy filter", filter: "tdy", expected: 1},
		{name: "case insensitive", filter: "HEAD", expected: 1},
		{name: "no match", filter: "zzz", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := commands.CountCards(commands.CountCardsOptions{
				RegistryOptions: opts,
				Filter:          tt.filter,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Count)
			assert.Equal(t, tt.filter, result.Filter)
		})
	}
}

func TestListCards(t *testing.T) {
	opts := setupCards(t)

	result, err := commands.ListCards(commands.ListCardsOptions{RegistryOptions: opts})
	require.NoError(t, err)
	require.Len(t, result.Cards, 3)

	assert.Equal(t, "news", result.Cards[0].Pack)
	assert.Equal(t, "headlines", result.Cards[0].Card)
	assert.Equal(t, "Top stories", result.Cards[0].Description)
	assert.Equal(t, "weather", result.Cards[1].Pack)
	assert.Equal(t, "today", result.Cards[1].Card)
	assert.Equal(t, "https://cards.example.com/weather/today/icon.png", result.Cards[1].Icon)

	t.Run("filtered", func(t *testing.T) {
		result, err := commands.ListCards(commands.ListCardsOptions{RegistryOptions: opts, Filter: "week"})
		require.NoError(t, err)
		require.Len(t, result.Cards, 1)
		assert.Equal(t, "week", result.Cards[0].Card)
	})

	t.Run("no match is empty not nil", func(t *testing.T) {
		result, err := commands.ListCards(commands.ListCardsOptions{RegistryOptions: opts, Filter: "qqq"})
		require.NoError(t, err)
		assert.NotNil(t, result.Cards)
		assert.Empty(t, result.Cards)
	})
}

func TestShowCard(t *testing.T) {
	opts := setupCards(t)

	t.Run("found", func(t *testing.T) {
		card, err := commands.ShowCard(commands.ShowCardOptions{
			RegistryOptions: opts,
			Pack:            "weather",
			Card:            "today",
		})
		require.NoError(t, err)
		assert.Equal(t, "Today", card.Name)
		assert.Equal(t, "https://cards.example.com/weather/today", card.BaseURL)
	})

	t.Run("unknown card", func(t *testing.T) {
		_, err := commands.ShowCard(commands.ShowCardOptions{
			RegistryOptions: opts,
			Pack:            "weather",
			Card:            "radar",
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Equal(t, "radar", errors.GetErrorDetails(err)["card"])
	})

	t.Run("hidden pack is not visible", func(t *testing.T) {
		_, err := commands.ShowCard(commands.ShowCardOptions{
			RegistryOptions: opts,
			Pack:            "secret",
			Card:            "x",
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("missing keys", func(t *testing.T) {
		_, err := commands.ShowCard(commands.ShowCardOptions{RegistryOptions: opts, Pack: "weather"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestListPacks(t *testing.T) {
	opts := setupCards(t)

	result, err := commands.ListPacks(commands.ListPacksOptions{RegistryOptions: opts})
	require.NoError(t, err)
	require.Len(t, result.Packs, 2)
	assert.Equal(t, "news", result.Packs[0].Key)
	assert.Equal(t, 1, result.Packs[0].Cards)
	assert.Equal(t, "weather", result.Packs[1].Key)
	assert.Equal(t, "Weather", result.Packs[1].Name)
	assert.Equal(t, 2, result.Packs[1].Cards)
}

func TestCommandsPropagateBuildErrors(t *testing.T) {
	tree := testutil.NewCardsTree(t)
	tree.AddPackDir("hashdo-broken", "{not json")

	cfg := config.Default()
	cfg.CardsDir = tree.Root
	opts := commands.RegistryOptions{Config: cfg, FS: tree.FS()}

	_, err := commands.CountCards(commands.CountCardsOptions{RegistryOptions: opts})
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))

	_, err = commands.ListPacks(commands.ListPacksOptions{RegistryOptions: opts})
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
}

func TestShowCardSuggestions(t *testing.T) {
	opts := setupCards(t)

	tests := []struct {
		name        string
		pack        string
		card        string
		suggestions []string
	}{
		{"card subsequence", "weather", "tdy", []string{"weather/today"}},
		{"card typo", "weather", "wek", []string{"weather/week"}},
		{"pack typo", "wether", "today", []string{"weather/today"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.ShowCard(commands.ShowCardOptions{
				RegistryOptions: opts,
				Pack:            tt.pack,
				Card:            tt.card,
			})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
			assert.Equal(t, tt.suggestions, errors.GetErrorDetails(err)["suggestions"])
			assert.Contains(t, err.Error(), "did you mean "+tt.suggestions[0]+"?")
		})
	}
}
