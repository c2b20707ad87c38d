package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, n := range []int{1, 3, 7} {
		widths := LayoutRow(100, n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != 100 {
			t.Fatalf("LayoutRow(100, %d) sums to %d", n, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestTabAtXMatchesRenderedLabels(t *testing.T) {
	for active := range Tabs {
		pos := 1
		for i := range Tabs {
			w := len(tabLabel(i, active))
			if got := TabAtX(pos+w/2, active); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, pos+w/2, got, i)
			}
			pos += w + len(tabSeparator)
		}
	}
	if TabAtX(0, 0) != -1 {
		t.Fatal("leading space should not hit a tab")
	}
}

func TestBalanceChartHeightAndNegatives(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{100, 50, -25, -80}
	labels := []string{"1", "2", "3", "4"}
	out := BalanceChart(values, labels, 40, 6)

	lines := strings.Split(out, "\n")
	// 6 chart rows + axis + labels
	if len(lines) != 8 {
		t.Fatalf("chart has %d lines, want 8:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "-80") {
		t.Fatalf("chart missing minimum label:\n%s", out)
	}
	if !strings.Contains(lines[len(lines)-1], "4") {
		t.Fatalf("last x label missing: %q", lines[len(lines)-1])
	}
}

func TestBalanceChartNarrowFallsBackToSparkline(t *testing.T) {
	out := BalanceChart([]float64{1, 2, 3}, nil, 10, 10)
	if strings.Contains(out, "\n") {
		t.Fatalf("narrow chart should be a single sparkline line, got %q", out)
	}
}

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		final, goal, want float64
	}{
		{2700, 700, 1},
		{350, 700, 0.5},
		{-100, 700, 0},
		{0, 0, 1},
		{-1, 0, 0},
	}
	for _, c := range cases {
		if got := GoalProgress(c.final, c.goal); got != c.want {
			t.Errorf("GoalProgress(%v, %v) = %v, want %v", c.final, c.goal, got, c.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	cases := map[float64]string{
		2000:  "2k",
		2700:  "2.7k",
		-80:   "-80",
		0.5:   "0.50",
		1.5e6: "1.5M",
	}
	for in, want := range cases {
		if got := formatChartLabel(in); got != want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", in, got, want)
		}
	}
}
