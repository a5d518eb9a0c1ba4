// Package formulas provides the small numeric helpers shared by the analytics modules.
package formulas

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// TrailingAverages returns the mean of the last window closes and the mean of the
// window immediately before it.
// ok is false when fewer than 2*window closes are available.
func TrailingAverages(closes []float64, window int) (recent, prior float64, ok bool) {
	n := len(closes)
	if window <= 0 || n < 2*window {
		return 0, 0, false
	}
	return Mean(closes[n-window:]), Mean(closes[n-2*window : n-window]), true
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ExactDecimal returns the exact decimal expansion of the binary value v.
// decimal.NewFromFloat uses the shortest representation instead, which turns
// 2.675 (stored as 2.67499999...) into a tie. v must be finite.
func ExactDecimal(v float64) decimal.Decimal {
	d, err := decimal.NewFromString(new(big.Float).SetFloat64(v).Text('f', 1074))
	if err != nil {
		return decimal.NewFromFloat(v)
	}
	return d
}

// RoundTo rounds v to the given number of decimal places, half to even on the
// exact binary value.
// Non-finite values are returned unchanged.
func RoundTo(v float64, places int32) float64 {
	if !IsFinite(v) {
		return v
	}
	return ExactDecimal(v).RoundBank(places).InexactFloat64()
}

// Round2 rounds v to two decimal places (cents)
func Round2(v float64) float64 {
	return RoundTo(v, 2)
}
