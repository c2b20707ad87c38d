package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/wallet/internal/model"
)

func TestBreakdown_NormalizesAndSumsTo100(t *testing.T) {
	shares, err := Breakdown([]model.Transaction{
		expense("food", model.Daily, 10, 0),
		expense("gym", model.Weekly, 25, 0),
		expense("rent", model.MonthlyOnDay, 600, 1),
		income("salary", model.MonthlyOnDay, 3000, 25),
	})
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if len(shares) != 3 {
		t.Fatalf("len(shares) = %d, want 3 (income skipped)", len(shares))
	}

	want := map[string]float64{"food": 300, "gym": 100, "rent": 600}
	total := 0.0
	for _, s := range shares {
		if s.MonthlyTotal != want[s.Name] {
			t.Fatalf("%s monthly = %v, want %v", s.Name, s.MonthlyTotal, want[s.Name])
		}
		total += s.Percentage
	}
	if math.Abs(total-100) > 1e-9 {
		t.Fatalf("percentages sum to %v, want 100", total)
	}
	if shares[0].Name != "rent" {
		t.Fatalf("first share = %q, want rent (largest)", shares[0].Name)
	}
	if math.Abs(shares[0].Percentage-60) > 1e-9 {
		t.Fatalf("rent share = %v, want 60", shares[0].Percentage)
	}
}

func TestBreakdown_EmptyWhenNoExpenses(t *testing.T) {
	shares, err := Breakdown(nil)
	if err != nil {
		t.Fatalf("Breakdown(nil): %v", err)
	}
	if shares == nil || len(shares) != 0 {
		t.Fatalf("Breakdown(nil) = %#v, want empty non-nil slice", shares)
	}
}

func TestBreakdown_EmptyWhenAllZero(t *testing.T) {
	shares, err := Breakdown([]model.Transaction{
		expense("a", model.Daily, 0, 0),
		expense("b", model.Weekly, 0, 0),
	})
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if len(shares) != 0 {
		t.Fatalf("len(shares) = %d, want 0", len(shares))
	}
	for _, s := range shares {
		if math.IsNaN(s.Percentage) {
			t.Fatal("NaN percentage leaked")
		}
	}
}

func TestBreakdown_UnknownFrequency(t *testing.T) {
	_, err := Breakdown([]model.Transaction{expense("x", model.Frequency(5), 1, 0)})
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Breakdown err = %v, want ValidationError", err)
	}
}
