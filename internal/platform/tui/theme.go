package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles of the menu and summary screens.
type Theme struct {
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Controls        lipgloss.Style

	Won  lipgloss.Style
	Lost lipgloss.Style

	TableBorder lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Won:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Lost: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		TableBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
	}
}

// centerText pads s on the left to center it within width.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return lipgloss.NewStyle().PaddingLeft((width - w) / 2).Render(s)
}
