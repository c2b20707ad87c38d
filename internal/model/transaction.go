// Package model defines domain types for wallet projections and saved inputs.
package model

import (
	"fmt"
	"math"
	"strings"
)

// Kind says whether a transaction adds to or subtracts from the balance.
type Kind int

const (
	Expense Kind = iota
	Income
)

func (k Kind) String() string {
	switch k {
	case Expense:
		return "expense"
	case Income:
		return "income"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == Expense || k == Income
}

// Frequency is the recurrence rule of a transaction.
type Frequency int

const (
	Daily Frequency = iota
	Weekly
	MonthlyOnDay
)

// Frequencies lists every valid frequency in display order.
var Frequencies = []Frequency{Daily, Weekly, MonthlyOnDay}

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case MonthlyOnDay:
		return "monthly"
	default:
		return fmt.Sprintf("frequency(%d)", int(f))
	}
}

// Label returns the human-facing name used in forms.
func (f Frequency) Label() string {
	switch f {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case MonthlyOnDay:
		return "Monthly (on a day)"
	default:
		return f.String()
	}
}

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	return f >= Daily && f <= MonthlyOnDay
}

// ParseFrequency maps text like "daily", "Weekly" or "monthly" to a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month", "monthly_on_day", "monthly (on a day)":
		return MonthlyOnDay, nil
	}
	return 0, &ValidationError{Field: "frequency", Value: s, Reason: "must be daily, weekly or monthly"}
}

// MarshalText implements encoding.TextMarshaler.
func (f Frequency) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, &ValidationError{Field: "frequency", Value: f.String(), Reason: "unknown frequency"}
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Frequency) UnmarshalText(b []byte) error {
	parsed, err := ParseFrequency(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Transaction is one recurring income or expense.
// Day is only meaningful when Frequency is MonthlyOnDay.
type Transaction struct {
	Name      string    `json:"name"`
	Kind      Kind      `json:"-"`
	Frequency Frequency `json:"frequency"`
	Amount    float64   `json:"amount"`
	Day       int       `json:"day,omitempty"`
}

// Validate checks the structural rules of a transaction. Negative amounts
// are allowed and behave as the opposite kind.
func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return &ValidationError{Field: "kind", Value: t.Kind.String(), Reason: "unknown kind"}
	}
	if !t.Frequency.Valid() {
		return &ValidationError{Field: "frequency", Value: t.Frequency.String(), Reason: "unknown frequency"}
	}
	if t.Frequency == MonthlyOnDay && (t.Day < 1 || t.Day > 31) {
		return &ValidationError{Field: "day", Value: fmt.Sprint(t.Day), Reason: "must be between 1 and 31"}
	}
	if !IsFinite(t.Amount) {
		return &ValidationError{Field: "amount", Value: fmt.Sprint(t.Amount), Reason: "must be a finite number"}
	}
	return nil
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DefaultName is the name given to a transaction entered without one.
// i is the zero-based position within its kind's list.
func DefaultName(kind Kind, i int) string {
	switch kind {
	case Income:
		return fmt.Sprintf("Income %d", i+1)
	default:
		return fmt.Sprintf("Expense %d", i+1)
	}
}

// ValidationError reports a rejected input value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
