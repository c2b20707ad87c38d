package cli

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "€0.00"},
		{2700, "€2,700.00"},
		{1234567.891, "€1,234,567.89"},
		{-20, "-€20.00"},
		{-0.001, "€0.00"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in, "€"); got != c.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(1990, "$"); got != "+$1,990.00" {
		t.Fatalf("FormatSignedMoney = %q", got)
	}
	if got := FormatSignedMoney(-10, "$"); got != "-$10.00" {
		t.Fatalf("FormatSignedMoney = %q", got)
	}
}

func TestMoneyBags(t *testing.T) {
	if got := utf8.RuneCountInString(MoneyBags(2750)); got != 27 {
		t.Fatalf("MoneyBags(2750) has %d bags, want 27", got)
	}
	if MoneyBags(-500) != "" || MoneyBags(99) != "" {
		t.Fatal("MoneyBags should be empty below 100")
	}
}

func TestRenderSparkline_HandlesNegatives(t *testing.T) {
	line := RenderSparkline([]float64{-100, 0, 100})
	runes := []rune(line)
	if len(runes) != 3 {
		t.Fatalf("len = %d, want 3", len(runes))
	}
	if runes[0] != '▁' || runes[2] != '█' {
		t.Fatalf("sparkline = %q, want lowest then highest block", line)
	}

	flat := RenderSparkline([]float64{5, 5, 5})
	if strings.Count(flat, "█") != 3 {
		t.Fatalf("flat sparkline = %q, want full blocks", flat)
	}
}

func TestRenderTable_Separator(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Day", "Balance"},
		Rows:    [][]string{{"1", "95.00"}, {"---"}, {"Final", "95.00"}},
	})
	if strings.Count(out, "├") != 2 {
		t.Fatalf("expected header rule and one separator:\n%s", out)
	}
	if !strings.Contains(out, "Final") {
		t.Fatalf("missing row:\n%s", out)
	}
}
