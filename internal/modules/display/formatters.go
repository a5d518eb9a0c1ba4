// Package display renders analysis and trade values for humans.
package display

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/aristath/advisor/pkg/formulas"
)

// NotAvailable is shown in place of absent optional values
const NotAvailable = "N/A"

// Large number suffix thresholds
const (
	Billion  = 1_000_000_000
	Million  = 1_000_000
	Thousand = 1_000
)

// DefaultCurrency is used when an empty or unknown code is given
const DefaultCurrency = money.USD

// IsKnownCurrency reports whether code is an ISO 4217 code known to go-money
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

func currency(code string) *money.Currency {
	if c := money.GetCurrency(strings.ToUpper(code)); c != nil {
		return c
	}
	return money.GetCurrency(DefaultCurrency)
}

// FormatCurrency formats amount with the currency's symbol, thousands separator
// and minor-unit precision, e.g. $1,234.56
func FormatCurrency(amount float64, code string) string {
	cur := currency(code)
	if !formulas.IsFinite(amount) {
		return NotAvailable
	}
	minor := formulas.ExactDecimal(amount).
		RoundBank(int32(cur.Fraction)).
		Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// FormatLargeNumber abbreviates n with a B, M or K suffix, e.g. $2.50B
func FormatLargeNumber(n float64, code string) string {
	symbol := currency(code).Grapheme
	switch {
	case n >= Billion:
		return fmt.Sprintf("%s%.2fB", symbol, n/Billion)
	case n >= Million:
		return fmt.Sprintf("%s%.2fM", symbol, n/Million)
	case n >= Thousand:
		return fmt.Sprintf("%s%.2fK", symbol, n/Thousand)
	default:
		return fmt.Sprintf("%s%.2f", symbol, n)
	}
}

// FormatPercent formats p as a percentage with two decimals
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// FormatDays formats a recovery horizon; zero means nothing to recover
func FormatDays(days int) string {
	if days > 0 {
		return fmt.Sprintf("%d days", days)
	}
	return NotAvailable
}

// Optional values are treated as absent when nil or zero.

// FormatOptionalCurrency formats v as currency, or N/A
func FormatOptionalCurrency(v *float64, code string) string {
	if v == nil || *v == 0 {
		return NotAvailable
	}
	return FormatCurrency(*v, code)
}

// FormatOptionalPercent formats v as a percentage, or N/A
func FormatOptionalPercent(v *float64) string {
	if v == nil || *v == 0 {
		return NotAvailable
	}
	return FormatPercent(*v)
}

// FormatOptionalRatio formats v with two decimals, or N/A
func FormatOptionalRatio(v *float64) string {
	if v == nil || *v == 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", *v)
}
