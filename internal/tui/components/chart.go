package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline scaled between the series min and max.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := len(blocks) - 1
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(blocks)-1))
		}
		buf.WriteRune(blocks[max(0, min(idx, len(blocks)-1))])
	}
	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// BalanceChart renders a column chart around a zero baseline. Positive
// values grow up in the income color, negative ones hang below the
// baseline in the expense color. labels, when the same length as values,
// are spread along the x-axis.
func BalanceChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active
	if width < 15 || height < 3 {
		return Sparkline(values, t.Accent)
	}

	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	yLabelW := max(len(formatChartLabel(hi)), len(formatChartLabel(lo))) + 1
	chartW := max(width-yLabelW-1, 5)

	values, labels = sampleSeries(values, labels, chartW)
	n := len(values)
	gap := 1
	if n <= 1 {
		gap = 0
	}
	barW := max(1, min((chartW-(n-1)*gap)/n, 4))
	axisLen := n*barW + max(0, n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	upStyle := lipgloss.NewStyle().Foreground(t.Income)
	downStyle := lipgloss.NewStyle().Foreground(t.Expense)

	zeroRow := -1
	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := lo + (hi-lo)*float64(row)/float64(height)
		rowBottom := lo + (hi-lo)*float64(row-1)/float64(height)

		label := ""
		switch {
		case row == height:
			label = formatChartLabel(hi)
		case row == 1:
			label = formatChartLabel(lo)
		case rowBottom <= 0 && rowTop > 0 && zeroRow < 0:
			label = "0"
		}
		if rowBottom <= 0 && rowTop > 0 {
			zeroRow = row
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, label)))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			cell := strings.Repeat(" ", barW)
			switch {
			case v > 0 && rowBottom >= 0 && v >= rowTop:
				cell = upStyle.Render(strings.Repeat("█", barW))
			case v > 0 && v > max(rowBottom, 0) && v < rowTop:
				frac := (v - max(rowBottom, 0)) / (rowTop - max(rowBottom, 0))
				idx := max(1, min(int(frac*8), 8))
				cell = upStyle.Render(strings.Repeat(string(blocks[idx]), barW))
			case v < 0 && rowTop > v && rowBottom < 0:
				cell = downStyle.Render(strings.Repeat("█", barW))
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW) + "└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		buf := []byte(strings.Repeat(" ", axisLen))
		lastEnd := -1
		for i := 0; i < n; i++ {
			pos := i * (barW + gap)
			lbl := labels[i]
			end := pos + len(lbl)
			if pos <= lastEnd || end > axisLen {
				continue
			}
			copy(buf[pos:end], lbl)
			lastEnd = end + 1
		}
		b.WriteString("\n")
		b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW+1) + strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// sampleSeries thins values (and matching labels) so at least one column
// and one gap fit per point.
func sampleSeries(values []float64, labels []string, chartW int) ([]float64, []string) {
	n := len(values)
	maxN := max(2, (chartW+1)/2)
	if n <= maxN {
		return values, labels
	}
	sampled := make([]float64, maxN)
	var sampledLabels []string
	if len(labels) == n {
		sampledLabels = make([]string, maxN)
	}
	for i := range sampled {
		src := i * (n - 1) / (maxN - 1)
		sampled[i] = values[src]
		if sampledLabels != nil {
			sampledLabels[i] = labels[src]
		}
	}
	return sampled, sampledLabels
}

func formatChartLabel(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%s%.1fM", sign, v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%s%.0fk", sign, v/1e3)
		}
		return fmt.Sprintf("%s%.1fk", sign, v/1e3)
	case v >= 1:
		return fmt.Sprintf("%s%.0f", sign, v)
	default:
		return fmt.Sprintf("%s%.2f", sign, v)
	}
}
