// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with two decimals, thousands separators
// and the given currency symbol in front.
// e.g., (1234.5, "€") -> "€1,234.50", (-20, "€") -> "-€20.00"
func FormatMoney(amount float64, symbol string) string {
	neg := amount < 0
	abs := math.Abs(amount)
	cents := int64(math.Round(abs * 100))

	s := symbol + FormatNumber(cents/100) + fmt.Sprintf(".%02d", cents%100)
	if neg && cents != 0 {
		return "-" + s
	}
	return s
}

// FormatSignedMoney is FormatMoney with an explicit "+" for non-negative values.
func FormatSignedMoney(amount float64, symbol string) string {
	if amount >= 0 {
		return "+" + FormatMoney(amount, symbol)
	}
	return FormatMoney(amount, symbol)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatShare formats a 0-100 percentage.
func FormatShare(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// MoneyBags returns one 💰 per full hundred of balance. Zero or negative
// balances get an empty string.
func MoneyBags(balance float64) string {
	n := int(balance / 100)
	if n <= 0 {
		return ""
	}
	const maxBags = 200
	if n > maxBags {
		n = maxBags
	}
	return strings.Repeat("💰", n)
}
