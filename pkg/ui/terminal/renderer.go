// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/style"
	"github.com/arthur-debert/hashdo/pkg/types"
)

// Renderer provides rich terminal output using lipgloss styles and pterm
// tables
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.CountResult:
		return r.renderCount(v)
	case *types.CardListResult:
		return r.renderCards(v)
	case *types.PackListResult:
		return r.renderPacks(v)
	case *types.Card:
		return r.renderCard(v)
	case *types.VersionInfo:
		return r.println(fmt.Sprintf("%s %s %s",
			style.TitleStyle.Render("hashdo"),
			style.NormalStyle.Render(v.Version),
			style.MutedStyle.Render(fmt.Sprintf("(commit %s, built %s)", v.Commit, v.Date))))
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with its code, when it carries one
func (r *Renderer) RenderError(err error) error {
	line := style.ErrorIndicator + " " + style.ErrorStyle.Render(err.Error())
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		line += " " + style.MutedStyle.Render("["+string(code)+"]")
	}
	return r.println(line)
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(style.InfoIndicator + " " + style.NormalStyle.Render(msg))
}

func (r *Renderer) renderCount(count *types.CountResult) error {
	line := style.CountStyle.Render(fmt.Sprintf("%d", count.Count)) + " " + style.NormalStyle.Render("cards")
	if count.Filter != "" {
		line += " " + style.MutedStyle.Render(fmt.Sprintf("matching %q", count.Filter))
	}
	return r.println(line)
}

func (r *Renderer) renderCards(list *types.CardListResult) error {
	if len(list.Cards) == 0 {
		return r.println(style.MutedStyle.Render("No cards found"))
	}

	for _, card := range list.Cards {
		line := style.CardRef(card.Pack, card.Card) + "  " + style.NormalStyle.Render(card.Name)
		if card.Description != "" {
			line += style.MutedStyle.Render(" - " + card.Description)
		}
		if err := r.println(line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderPacks(list *types.PackListResult) error {
	if len(list.Packs) == 0 {
		return r.println(style.MutedStyle.Render("No packs found"))
	}

	data := pterm.TableData{{"Pack", "Name", "Cards"}}
	for _, pack := range list.Packs {
		data = append(data, []string{
			style.PackStyle.Render(pack.Key),
			pack.Name,
			fmt.Sprintf("%d", pack.Cards),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	return r.println(table)
}

func (r *Renderer) renderCard(card *types.Card) error {
	lines := []string{
		style.CardRef(card.Pack, card.Card),
		style.Label("Name") + style.NormalStyle.Render(card.Name),
	}
	if card.Description != "" {
		lines = append(lines, style.Label("Description")+style.NormalStyle.Render(card.Description))
	}
	lines = append(lines,
		style.Label("Icon")+style.URLStyle.Render(card.Icon),
		style.Label("Base URL")+style.URLStyle.Render(card.BaseURL),
	)

	if card.Inputs != nil {
		inputs, err := sonic.MarshalIndent(card.Inputs, "", "  ")
		if err != nil {
			return err
		}
		lines = append(lines, style.Label("Inputs"), style.MutedStyle.Render(string(inputs)))
	}

	return r.println(style.BoxStyle.Render(strings.Join(lines, "\n")))
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}
