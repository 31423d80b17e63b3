package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	panel    lipgloss.Style
	selected lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	keyHint  lipgloss.Style
	warning  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		label: lipgloss.NewStyle().
			Foreground(t.Muted),
		value: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),
		keyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Warning),
	}
}

// ShareBar renders a horizontal bar filled to percent/100 of width.
func ShareBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func separator(width int, s lipgloss.Style) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Render(left + " ◆ " + right)
}
