package components

import (
	"strings"

	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and a status message on the right.
func RenderStatusBar(width int, hints, message string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + hints
	right := message + " "
	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
