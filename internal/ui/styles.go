package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	tab      lipgloss.Style
	tabOn    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	errLine  lipgloss.Style
	infoLine lipgloss.Style
	help     lipgloss.Style
	userTurn lipgloss.Style
	botTurn  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		tab:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		tabOn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		errLine:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		infoLine: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		help:     lipgloss.NewStyle().Faint(true),
		userTurn: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		botTurn:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
