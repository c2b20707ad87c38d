package components

import (
	"fmt"

	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// GoalProgress returns how far final has come toward goal, clamped to 0..1.
// A zero or negative goal counts as met once the balance is non-negative.
func GoalProgress(final, goal float64) float64 {
	if goal <= 0 {
		if final >= 0 {
			return 1
		}
		return 0
	}
	return max(0, min(final/goal, 1))
}

// ColorForGoal returns the expense color below half, warning below the
// goal and income color once the goal is reached.
func ColorForGoal(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.Income
	case pct >= 0.5:
		return t.Warning
	default:
		return t.Expense
	}
}

// GoalBar renders a labeled bar showing progress toward the saving goal.
func GoalBar(label string, final, goal float64, labelW, barWidth int) string {
	t := theme.Active
	pct := GoalProgress(final, goal)
	color := ColorForGoal(pct)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(pct) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// ShareBar renders one breakdown row bar for a 0-100 percentage.
func ShareBar(pct float64, color lipgloss.Color, barWidth int) string {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Active.Surface)
	return bar.ViewAs(max(0, min(pct/100, 1)))
}
