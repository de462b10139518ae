// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/arthur-debert/hashdo/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.CountResult:
		return r.printf("%d\n", v.Count)
	case *types.CardListResult:
		return r.renderCards(v)
	case *types.PackListResult:
		return r.renderPacks(v)
	case *types.Card:
		return r.renderCard(v)
	case *types.VersionInfo:
		return r.printf("hashdo %s (commit %s, built %s)\n", v.Version, v.Commit, v.Date)
	default:
		return r.printf("%+v\n", result)
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	return r.printf("Error: %s\n", err.Error())
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.printf("%s\n", msg)
}

func (r *Renderer) renderCards(list *types.CardListResult) error {
	if len(list.Cards) == 0 {
		return r.printf("No cards found\n")
	}
	for _, card := range list.Cards {
		line := fmt.Sprintf("%s/%s  %s", card.Pack, card.Card, card.Name)
		if card.Description != "" {
			line += " - " + card.Description
		}
		if err := r.printf("%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderPacks(list *types.PackListResult) error {
	if len(list.Packs) == 0 {
		return r.printf("No packs found\n")
	}
	for _, pack := range list.Packs {
		if err := r.printf("%s  %s (%d cards)\n", pack.Key, pack.Name, pack.Cards); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderCard(card *types.Card) error {
	fields := [][2]string{
		{"Pack", card.Pack},
		{"Card", card.Card},
		{"Name", card.Name},
		{"Description", card.Description},
		{"Icon", card.Icon},
		{"Base URL", card.BaseURL},
	}
	for _, field := range fields {
		if err := r.printf("%-12s %s\n", field[0]+":", field[1]); err != nil {
			return err
		}
	}
	if card.Inputs == nil {
		return nil
	}
	inputs, err := sonic.MarshalIndent(card.Inputs, "", "  ")
	if err != nil {
		return err
	}
	return r.printf("%-12s %s\n", "Inputs:", inputs)
}

func (r *Renderer) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.output, format, args...)
	return err
}
