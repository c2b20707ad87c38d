package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)
	goodStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	badStyle    = lipgloss.NewStyle().Foreground(ColorRed)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorOrange)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table. The first column is left-aligned,
// the rest right-aligned. A row of exactly {"---"} draws a separator.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String()) + "\n"
	}

	line := func(cells []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if i == 0 {
				b.WriteString(style.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(style.Render(" " + pad + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		return b.String() + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, headerStyle))
		b.WriteString(rule("├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(line(row, valueStyle))
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

// RenderSparkline generates a unicode block sparkline. The lowest value maps
// to the shortest block, so negative balances render too.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo

	var b strings.Builder
	for _, v := range values {
		idx := len(blocks) - 1
		if span > 0 {
			idx = int((v - lo) / span * float64(len(blocks)-1))
		}
		idx = max(0, min(idx, len(blocks)-1))
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderHorizontalBar renders a bar proportional to value/maxValue.
func RenderHorizontalBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	barLen = max(0, min(barLen, maxWidth))
	return strings.Repeat("█", barLen)
}

// RenderSummary renders the headline lines shown after a projection.
func RenderSummary(final, goal, disposable float64, symbol string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n",
		mutedStyle.Render("Predicted remaining balance at the end of the month:"),
		balanceStyle(final).Render(FormatMoney(final, symbol)))
	fmt.Fprintf(&b, "  %s %s\n",
		mutedStyle.Render("Saving goal:"),
		valueStyle.Render(FormatMoney(goal, symbol)))
	fmt.Fprintf(&b, "  %s %s\n",
		mutedStyle.Render("Predicted disposable income at the end of the month:"),
		balanceStyle(disposable).Render(FormatMoney(disposable, symbol)))
	if disposable < 0 {
		b.WriteString("  " + warnStyle.Render("You are on track to miss your saving goal.") + "\n")
	}
	return b.String()
}

func balanceStyle(v float64) lipgloss.Style {
	if v < 0 {
		return badStyle
	}
	return goodStyle
}
