package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/wallet/internal/cli"
	"github.com/theirongolddev/wallet/internal/tui/components"
	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active
	shares := a.outcome.Breakdown

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	if len(shares) == 0 {
		return components.ContentCard("Monthly Expenses", mutedStyle.Render("No expenses to break down."), cw)
	}

	innerW := components.CardInnerWidth(cw)
	amountW := 12
	pctW := 7
	nameW := max(12, min(24, innerW/3))
	barW := max(5, innerW-nameW-amountW-pctW-3)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	// Pre-compute name styles for the rotating series colors
	nameStyles := make([]lipgloss.Style, len(t.Series))
	for i, color := range t.Series {
		nameStyles[i] = lipgloss.NewStyle().Foreground(color)
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %*s %*s %s", nameW, "Expense", amountW, "Per month", pctW, "Share", "")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	var total float64
	for i, s := range shares {
		total += s.MonthlyTotal
		color := t.Series[i%len(t.Series)]
		body.WriteString(nameStyles[i%len(nameStyles)].Render(fmt.Sprintf("%-*s", nameW, truncStr(s.Name, nameW))))
		body.WriteString(rowStyle.Render(fmt.Sprintf(" %*s %*s ", amountW, cli.FormatMoney(s.MonthlyTotal, a.symbol), pctW, cli.FormatShare(s.Percentage))))
		body.WriteString(components.ShareBar(s.Percentage, color, barW))
		body.WriteString("\n")
	}
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")
	body.WriteString(rowStyle.Bold(true).Render(fmt.Sprintf("%-*s %*s", nameW, "Total", amountW, cli.FormatMoney(total, a.symbol))))

	return components.ContentCard("Monthly Expenses", body.String(), cw)
}
