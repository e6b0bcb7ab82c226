package tui

import "charm.land/lipgloss/v2"

// Color palette — warm and playful to match the pet theme
var (
	colorPrimary = lipgloss.Color("#F472B6") // Pink
	colorAccent  = lipgloss.Color("#38BDF8") // Sky Blue
	colorSuccess = lipgloss.Color("#4ADE80") // Green
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorTextDim = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
	colorCard    = lipgloss.Color("#1E293B") // Dark Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleTypeHeader = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleHint = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)

	styleDetail = lipgloss.NewStyle().
			Background(colorCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)
