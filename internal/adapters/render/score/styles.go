package score

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	score      lipgloss.Style
	riskLow    lipgloss.Style
	riskMedium lipgloss.Style
	riskHigh   lipgloss.Style
	detail     lipgloss.Style
	bullet     lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	barText    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		score:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		riskLow:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		riskMedium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		riskHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		bullet:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barText:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (s styles) risk(category string) lipgloss.Style {
	switch category {
	case "LOW":
		return s.riskLow
	case "MEDIUM":
		return s.riskMedium
	case "HIGH":
		return s.riskHigh
	default:
		return s.detail
	}
}
