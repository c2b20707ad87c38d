// Package pipeline projects balances over the month and aggregates expense shares.
package pipeline

import (
	"github.com/theirongolddev/wallet/internal/model"
)

// Fires returns the amount tx contributes on day, or 0 when it does not fire.
// startDay anchors the weekly cadence. A monthly transaction whose day is
// before startDay never fires; there is no wraparound into the next month.
func Fires(tx model.Transaction, day, startDay int) (float64, error) {
	switch tx.Frequency {
	case model.Daily:
		return tx.Amount, nil
	case model.Weekly:
		if (day-startDay)%7 == 0 {
			return tx.Amount, nil
		}
		return 0, nil
	case model.MonthlyOnDay:
		if day == tx.Day {
			return tx.Amount, nil
		}
		return 0, nil
	default:
		return 0, &model.ValidationError{
			Field:  "frequency",
			Value:  tx.Frequency.String(),
			Reason: "unknown frequency for transaction " + quoteName(tx.Name),
		}
	}
}

// MonthlyEquivalent normalizes tx to a 30-day month total.
// Weekly counts as four occurrences.
func MonthlyEquivalent(tx model.Transaction) (float64, error) {
	switch tx.Frequency {
	case model.Daily:
		return tx.Amount * model.DefaultHorizonEndDay, nil
	case model.Weekly:
		return tx.Amount * 4, nil
	case model.MonthlyOnDay:
		return tx.Amount, nil
	default:
		return 0, &model.ValidationError{
			Field:  "frequency",
			Value:  tx.Frequency.String(),
			Reason: "unknown frequency for transaction " + quoteName(tx.Name),
		}
	}
}

func quoteName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return "\"" + name + "\""
}
