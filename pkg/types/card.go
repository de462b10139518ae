package types

import (
	"path/filepath"
	"strings"
)

// Card is a single deliverable content unit belonging to a pack
type Card struct {
	Pack        string `json:"pack"`
	Card        string `json:"card"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	BaseURL     string `json:"baseUrl"`

	// Inputs is the card's input schema, passed through unmodified
	Inputs interface{} `json:"inputs"`
}

// Summary returns the listing view of the card, without inputs and base URL
func (c *Card) Summary() CardSummary {
	return CardSummary{
		Pack:        c.Pack,
		Card:        c.Card,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	}
}

// CardSummary is the listing view of a card
type CardSummary struct {
	Pack        string `json:"pack"`
	Card        string `json:"card"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CardDefinition is the decoded content of a card definition document
type CardDefinition struct {
	Name        string
	Description string
	Icon        string
	Inputs      interface{}
}

// CardFormat identifies the encoding of a card definition document
type CardFormat string

const (
	CardFormatJSON CardFormat = "json"
	CardFormatYAML CardFormat = "yaml"
	CardFormatTOML CardFormat = "toml"
)

// CardFile is a card definition document found in a pack directory
type CardFile struct {
	// Key is the file's base name without extension
	Key    string
	Path   string
	Format CardFormat
}

// CardFormatForExtension maps a card file extension to a card format.
// Compound extensions such as ".card.json" are decided by their last element.
func CardFormatForExtension(ext string) (CardFormat, bool) {
	switch strings.ToLower(filepath.Ext(ext)) {
	case ".json":
		return CardFormatJSON, true
	case ".yaml", ".yml":
		return CardFormatYAML, true
	case ".toml":
		return CardFormatTOML, true
	}
	return "", false
}
