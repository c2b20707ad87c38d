package components

import (
	"strings"

	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune // shortcut, always the lowercase first letter of Name
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Projection", Key: 'p'},
	{Name: "Breakdown", Key: 'b'},
	{Name: "History", Key: 'h'},
}

const tabSeparator = "  "

// tabLabel is the plain text drawn for a tab, without styling.
func tabLabel(i, activeIdx int) string {
	tab := Tabs[i]
	if i == activeIdx {
		return " " + tab.Name + " "
	}
	return "[" + string(tab.Name[0]) + "]" + tab.Name[1:]
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tabLabel(i, activeIdx))
			continue
		}
		parts[i] = keyStyle.Render("["+string(tab.Name[0])+"]") + inactiveStyle.Render(tab.Name[1:])
	}

	return lipgloss.NewStyle().Width(width).Render(" " + strings.Join(parts, tabSeparator))
}

// TabAtX returns the tab under column x of the rendered bar, or -1.
func TabAtX(x, activeIdx int) int {
	pos := 1 // leading space
	for i := range Tabs {
		w := lipgloss.Width(tabLabel(i, activeIdx))
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + len(tabSeparator)
	}
	return -1
}
