package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	healthyColor  = lipgloss.Color("10") // Green
	degradedColor = lipgloss.Color("11") // Yellow
	alertingColor = lipgloss.Color("9")  // Red
	unknownColor  = lipgloss.Color("8")  // Gray

	headerBg   = lipgloss.Color("235")
	statusBg   = lipgloss.Color("236")
	errorColor = lipgloss.Color("9")
	dimColor   = lipgloss.Color("8")
)

// Styles
var (
	healthyStyle = lipgloss.NewStyle().
			Foreground(healthyColor).
			Bold(true)

	degradedStyle = lipgloss.NewStyle().
			Foreground(degradedColor)

	alertingStyle = lipgloss.NewStyle().
			Foreground(alertingColor).
			Bold(true)

	unknownStyle = lipgloss.NewStyle().
			Foreground(unknownColor)

	headerStyle = lipgloss.NewStyle().
			Background(headerBg).
			Padding(0, 1).
			MarginBottom(1)

	statusBarStyle = lipgloss.NewStyle().
			Background(statusBg).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(errorColor).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)

// statusStyle returns the style for a site status string
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "healthy":
		return healthyStyle
	case "degraded":
		return degradedStyle
	case "alerting", "action_fired":
		return alertingStyle
	default:
		return unknownStyle
	}
}
