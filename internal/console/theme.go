package console

import "charm.land/lipgloss/v2"

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
)

// Theme holds the styles used for console output.
type Theme struct {
	Title     lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Prompt    lipgloss.Style
	Assistant lipgloss.Style
	Body      lipgloss.Style
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Info:      lipgloss.NewStyle().Foreground(TextDim).Italic(true),
		Success:   lipgloss.NewStyle().Foreground(Success).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(Error).Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(Secondary).Bold(true),
		Assistant: lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Body:      lipgloss.NewStyle().Foreground(Text),
	}
}

// PlainTheme returns a theme that renders text unchanged.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:     plain,
		Info:      plain,
		Success:   plain,
		Error:     plain,
		Prompt:    plain,
		Assistant: plain,
		Body:      plain,
	}
}
