package web

import (
	"net/url"
	"testing"

	"github.com/theirongolddev/wallet/internal/model"
)

func TestParseSubmission_SkipsBlankRows(t *testing.T) {
	form := url.Values{
		"current_money":     {"12,50"},
		"saving_goal":       {""},
		"expense_name":      {"", "Gym", ""},
		"expense_amount":    {"", "30", ""},
		"expense_frequency": {"daily", "monthly", "daily"},
		"expense_day":       {"1", "0", "1"},
	}
	sub, warnings := parseSubmission(form, model.Snapshot{SavingGoal: 700})

	if sub.CurrentMoney != 12.5 {
		t.Fatalf("CurrentMoney = %v, want 12.5", sub.CurrentMoney)
	}
	// blank reads as zero, not as the default
	if sub.SavingGoal != 0 {
		t.Fatalf("SavingGoal = %v, want 0", sub.SavingGoal)
	}
	if len(sub.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(sub.Transactions))
	}
	gym := sub.Transactions[0]
	if gym.Name != "Gym" || gym.Frequency != model.MonthlyOnDay || gym.Day != 1 {
		t.Fatalf("gym = %+v", gym)
	}
	if len(warnings) != 1 || warnings[0] != "expense_day_1" {
		t.Fatalf("warnings = %v, want [expense_day_1]", warnings)
	}
}

func TestParseSubmission_IncomeKind(t *testing.T) {
	form := url.Values{
		"income_name":      {"Salary"},
		"income_frequency": {"Weekly"},
		"income_amount":    {"100"},
	}
	sub, warnings := parseSubmission(form, model.Snapshot{})
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if len(sub.Transactions) != 1 || sub.Transactions[0].Kind != model.Income || sub.Transactions[0].Frequency != model.Weekly {
		t.Fatalf("transactions = %+v", sub.Transactions)
	}
}

func TestParseSubmission_NamesUnnamedRows(t *testing.T) {
	form := url.Values{
		"expense_name":      {"Rent", "", "a:b"},
		"expense_amount":    {"500", "5", "1"},
		"expense_frequency": {"weekly", "daily", "daily"},
	}
	sub, warnings := parseSubmission(form, model.Snapshot{})
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if len(sub.Transactions) != 3 || sub.Transactions[1].Name != "Expense 2" || sub.Transactions[2].Name != "a:b" {
		t.Fatalf("transactions = %+v", sub.Transactions)
	}
}

func TestParseSubmission_ThousandsSeparatedMoney(t *testing.T) {
	sub, warnings := parseSubmission(url.Values{"current_money": {"2,000"}}, model.Snapshot{})
	if sub.CurrentMoney != 2000 || len(warnings) != 0 {
		t.Fatalf("CurrentMoney = %v warnings = %v, want 2000 and none", sub.CurrentMoney, warnings)
	}
	sub, warnings = parseSubmission(url.Values{"current_money": {"2,0000"}}, model.Snapshot{})
	if sub.CurrentMoney != 0 || len(warnings) != 1 || warnings[0] != "current_money" {
		t.Fatalf("CurrentMoney = %v warnings = %v, want 0 and a current_money warning", sub.CurrentMoney, warnings)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"", 0, true},
		{" 42 ", 42, true},
		{"3,5", 3.5, true},
		{"0,75", 0.75, true},
		{"-7.25", -7.25, true},
		{"1,000", 1000, true},
		{"1,234,567", 1234567, true},
		{"-2,500.75", -2500.75, true},
		{"1,2345", 0, false},
		{"12,34,567", 0, false},
		{"1.234,56", 0, false},
		{"1,5,0", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"abc", 0, false},
	}
	for _, c := range cases {
		got, ok := parseAmount(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("parseAmount(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNewChartView(t *testing.T) {
	c := newChartView([]float64{100, -100})
	if c.Empty {
		t.Fatal("chart should not be empty")
	}
	if c.ZeroY != float64(chartHeight)/2 {
		t.Fatalf("ZeroY = %v, want middle %v", c.ZeroY, float64(chartHeight)/2)
	}
	if c.Points != "4.0,4.0 596.0,156.0" {
		t.Fatalf("Points = %q", c.Points)
	}
	if !newChartView(nil).Empty {
		t.Fatal("nil series should be empty")
	}
}
