package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// renderBar draws a horizontal progress bar with a trailing percentage.
func renderBar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}

	filled := int(float64(width) * percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().Background(colorAccent).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(colorBorder).Render(strings.Repeat(" ", width-filled))

	pct := lipgloss.NewStyle().
		Foreground(colorTextDim).
		Render(fmt.Sprintf(" %3d%%", int(percent*100)))

	return bar + pct
}
