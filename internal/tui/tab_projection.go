package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/wallet/internal/cli"
	"github.com/theirongolddev/wallet/internal/tui/components"
	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProjectionTab(cw int) string {
	t := theme.Active
	out := a.outcome
	sum := out.Summary
	var b strings.Builder

	// Row 1: headline cards
	disposableColor := t.Income
	if sum.Disposable < 0 {
		disposableColor = t.Expense
	}
	finalColor := t.Income
	if sum.FinalBalance < 0 {
		finalColor = t.Expense
	}
	metrics := []components.Metric{
		{Label: "Current money", Value: cli.FormatMoney(out.Request.StartingBalance, a.symbol)},
		{Label: "End of month", Value: cli.FormatMoney(sum.FinalBalance, a.symbol), Color: finalColor},
		{Label: "Saving goal", Value: cli.FormatMoney(sum.SavingGoal, a.symbol)},
		{Label: "Disposable", Value: cli.FormatMoney(sum.Disposable, a.symbol), Color: disposableColor},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: daily balance chart
	days := out.Projection.Days
	if len(days) > 0 {
		labels := make([]string, len(days))
		for i, d := range days {
			labels[i] = strconv.Itoa(d.Day)
		}
		title := fmt.Sprintf("Daily Balance (day %d to %d)", out.Request.StartDay, out.Request.HorizonEndDay)
		b.WriteString(components.ContentCard(
			title,
			components.BalanceChart(out.Projection.Balances(), labels, components.CardInnerWidth(cw), 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: progress toward the goal
	innerW := components.CardInnerWidth(cw)
	labelW := 12
	barW := max(10, innerW-labelW-6)
	goal := components.GoalBar("Saving goal", sum.FinalBalance, sum.SavingGoal, labelW, barW)
	if sum.Disposable < 0 {
		goal += "\n" + lipgloss.NewStyle().Foreground(t.Warning).Render("On track to miss the saving goal.")
	}
	b.WriteString(components.ContentCard("Goal", goal, cw))

	return b.String()
}
