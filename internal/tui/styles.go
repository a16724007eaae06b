package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	guideFg   = lipgloss.Color("#243141")
	resultFg  = lipgloss.Color("#F30F30")
	pastFg    = lipgloss.Color("#7A2A2A")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)

	guideStyle  = lipgloss.NewStyle().Foreground(guideFg)
	rectStyle   = lipgloss.NewStyle().Foreground(accentFg)
	inkStyle    = lipgloss.NewStyle().Foreground(baseFg)
	resultStyle = lipgloss.NewStyle().Foreground(resultFg).Bold(true)
	pastStyle   = lipgloss.NewStyle().Foreground(pastFg)
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)
