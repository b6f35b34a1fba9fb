package tui

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header    lipgloss.Style
	Prompt    lipgloss.Style
	Frame     lipgloss.Style
	FrameBlur lipgloss.Style
	Month     lipgloss.Style
	Date      lipgloss.Style
	Star      lipgloss.Style
	Selected  lipgloss.Style
	Help      lipgloss.Style
	Status    lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: lipgloss.NewStyle().Bold(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 1),
		FrameBlur: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Month:    lipgloss.NewStyle().Bold(true).Underline(true),
		Date:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Star:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
