// Package display renders sessions for a terminal, either as a full-screen
// Bubble Tea program or as plain line-by-line output.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokermentor/poker"
)

// Styles contains all styling for the terminal views.
type Styles struct {
	// Pane styles
	LogPane    lipgloss.Style
	ActionPane lipgloss.Style
	Help       lipgloss.Style

	// Content styles
	Header    lipgloss.Style
	HandInfo  lipgloss.Style
	Actions   lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// DefaultStyles returns the standard colour scheme.
func DefaultStyles() *Styles {
	return &Styles{
		LogPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(1),
		ActionPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		HandInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Actions: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Cards formats cards in brackets, coloured by suit.
func (s *Styles) Cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "[]"
	}
	formatted := make([]string, len(cards))
	for i, card := range cards {
		if card.Suit().Red() {
			formatted[i] = s.RedCard.Render(card.String())
		} else {
			formatted[i] = s.BlackCard.Render(card.String())
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}
