package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/wallet/internal/cli"
	"github.com/theirongolddev/wallet/internal/model"
	"github.com/theirongolddev/wallet/internal/tui/components"
	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHistoryTab(cw, h int) string {
	t := theme.Active
	history := a.history

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	if len(history) == 0 {
		return components.ContentCard("Balance History", mutedStyle.Render("Nothing recorded yet. Press s to record today's projection."), cw)
	}

	var b strings.Builder

	values := make([]float64, len(history))
	for i, r := range history {
		values[i] = r.FinalBalance
	}
	chartH := 8
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Predicted End-of-Month Balance (%d records)", len(history)),
		components.BalanceChart(values, historyLabels(history), components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Newest first, scrolled by historyScroll
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	innerW := components.CardInnerWidth(cw)
	amountW := 14

	// chart card + list card borders, title and header
	rows := max(1, h-(chartH+4)-6)

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %*s", "Date", amountW, "Balance")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", min(innerW, 12+1+amountW))))

	start := len(history) - 1 - a.historyScroll
	for i := start; i >= 0 && start-i < rows; i-- {
		r := history[i]
		color := t.Income
		if r.FinalBalance < 0 {
			color = t.Expense
		}
		body.WriteString("\n")
		body.WriteString(dateStyle.Render(fmt.Sprintf("%-12s ", r.Date.Format("2006-01-02"))))
		body.WriteString(lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%*s", amountW, cli.FormatMoney(r.FinalBalance, a.symbol))))
	}

	b.WriteString(components.ContentCard("Records", body.String(), cw))
	return b.String()
}

// historyLabels labels the first record and each month change with the
// month name, everything else with the day of month.
func historyLabels(records []model.BalanceHistoryRecord) []string {
	labels := make([]string, len(records))
	for i, r := range records {
		switch {
		case i == 0, r.Date.Month() != records[i-1].Date.Month():
			labels[i] = r.Date.Format("Jan")
		default:
			labels[i] = r.Date.Format("2")
		}
	}
	return labels
}
