// Package style holds the lipgloss palette and styles of the hashdo CLI
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	CountStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// Registry entity styles
var (
	PackStyle = lipgloss.NewStyle().
			Foreground(PackColor).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Foreground(CardColor)

	URLStyle = lipgloss.NewStyle().
			Foreground(URLColor).
			Underline(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Width(12)
)

// Indicators
var (
	ErrorIndicator = ErrorStyle.Render("✗")
	InfoIndicator  = InfoStyle.Render("•")
)

// CardRef renders a "pack/card" reference
func CardRef(pack, card string) string {
	return PackStyle.Render(pack) + MutedStyle.Render("/") + CardStyle.Render(card)
}

// Label renders a fixed-width field label
func Label(s string) string {
	return LabelStyle.Render(s)
}
