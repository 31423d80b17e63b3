package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/labelmaker/internal/annotate"
)

var (
	headerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	headerTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	columnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(32)
)

// Header renders the label header as three bordered columns for the
// terminal. It returns an empty string when every annotation is off.
func Header(title string, label annotate.Label, t annotate.Toggles) string {
	h := label.Header(t)
	if h.Empty() && title == "" {
		return ""
	}

	var parts []string
	if title != "" {
		parts = append(parts, headerTitle.Render(title))
	}
	if !h.Empty() {
		left := columnStyle.Align(lipgloss.Left).Render(strings.Join(h.Left, "\n"))
		center := columnStyle.Align(lipgloss.Center).Render(strings.Join(h.Center, "\n"))
		right := columnStyle.Align(lipgloss.Right).Render(strings.Join(h.Right, "\n"))
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, left, center, right))
	}
	return headerBox.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
