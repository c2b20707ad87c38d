// Package components provides reusable TUI widgets for the wallet dashboard.
package components

import (
	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one label/value pair shown in a card row.
type Metric struct {
	Label string
	Value string
	Color lipgloss.Color // empty uses the primary text color
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small bordered card. outerWidth includes the border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	color := m.Color
	if color == "" {
		color = t.TextPrimary
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)

	label := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label)
	value := lipgloss.NewStyle().Foreground(color).Bold(true).Render(m.Value)

	return cardStyle.Render(label + "\n" + value)
}

// MetricCardRow renders cards side by side, summing to totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered content card with an optional title.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)

	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n" + body
	}
	return cardStyle.Render(content)
}

// CardInnerWidth returns the usable text width inside a ContentCard.
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10)
}
