// ABOUTME: Lipgloss styles for the TUI
// ABOUTME: Derived from the configured theme colors
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"culturadesk/config"
)

type Styles struct {
	Title    lipgloss.Style
	Column   lipgloss.Style
	Header   lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Help     lipgloss.Style
}

func NewStyles(theme config.Theme) Styles {
	primary := lipgloss.Color(theme.PrimaryColor)
	secondary := lipgloss.Color(theme.SecondaryColor)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 1),
		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Padding(0, 1).
			Width(28),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary),
		Card: lipgloss.NewStyle().
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(primary),
		Dim: lipgloss.NewStyle().
			Faint(true),
		Help: lipgloss.NewStyle().
			Faint(true).
			Padding(1, 1),
	}
}
