package designgen

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the reporters. Lipgloss degrades colors to
// whatever the terminal supports.
var (
	// StyleLocation marks file locations and section headers.
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError marks failed checks.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleWarning marks warnings and caret indicators.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleSuccess marks written files and clean checks.
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleMuted is used for check names and hints.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies style to text when colors are enabled
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
