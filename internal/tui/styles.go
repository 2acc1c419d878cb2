package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the browser views.
type Styles struct {
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Border   lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles is the built-in dark-terminal scheme.
var DefaultStyles = Styles{
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14")).
		Border(lipgloss.NormalBorder()).
		Padding(0, 1),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Border(lipgloss.NormalBorder()).
		Padding(0, 1),
	Border: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("15")),
	Dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")),
}
