package types_test

import (
	"testing"

	"github.com/arthur-debert/hashdo/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestCardSummary(t *testing.T) {
	card := &types.Card{
		Pack:        "weather",
		Card:        "today",
		Name:        "Today's Weather",
		Description: "Current conditions",
		Icon:        "https://example.com/weather/today/icon.png",
		BaseURL:     "https://example.com/weather/today",
		Inputs:      map[string]interface{}{"city": "string"},
	}

	assert.Equal(t, types.CardSummary{
		Pack:        "weather",
		Card:        "today",
		Name:        "Today's Weather",
		Description: "Current conditions",
		Icon:        "https://example.com/weather/today/icon.png",
	}, card.Summary())
}

func TestPack(t *testing.T) {
	pack := &types.Pack{
		Key:  "weather",
		Name: "Weather",
		Path: "/cards/hashdo-weather",
		Cards: map[string]*types.Card{
			"week":  {Pack: "weather", Card: "week"},
			"today": {Pack: "weather", Card: "today"},
		},
	}

	t.Run("card_keys_sorted", func(t *testing.T) {
		assert.Equal(t, []string{"today", "week"}, pack.CardKeys())
	})

	t.Run("summary", func(t *testing.T) {
		assert.Equal(t, types.PackSummary{Key: "weather", Name: "Weather", Cards: 2}, pack.Summary())
	})

	t.Run("file_path", func(t *testing.T) {
		assert.Equal(t, "/cards/hashdo-weather/package.json", pack.GetFilePath("package.json"))
	})

	t.Run("empty_pack", func(t *testing.T) {
		empty := &types.Pack{Key: "empty"}
		assert.Empty(t, empty.CardKeys())
		assert.Equal(t, 0, empty.Summary().Cards)
	})
}

func TestCardFormatForExtension(t *testing.T) {
	tests := []struct {
		ext    string
		want   types.CardFormat
		wantOK bool
	}{
		{".json", types.CardFormatJSON, true},
		{".JSON", types.CardFormatJSON, true},
		{".yaml", types.CardFormatYAML, true},
		{".yml", types.CardFormatYAML, true},
		{".toml", types.CardFormatTOML, true},
		{".card.json", types.CardFormatJSON, true},
		{".card.YML", types.CardFormatYAML, true},
		{".js", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, ok := types.CardFormatForExtension(tt.ext)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
