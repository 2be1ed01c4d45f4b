package transcript

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	command    lipgloss.Style
	response   lipgloss.Style
	turnNumber lipgloss.Style
	success    lipgloss.Style
	failure    lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	metricKey  lipgloss.Style
	metricVal  lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		command:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		response:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		turnNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		success:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		failure:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		metricKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		metricVal:  lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
