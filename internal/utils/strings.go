package utils

import "strings"

// NormalizeTicker trims and upper-cases a ticker symbol
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsCryptoTicker reports whether ticker is a crypto pair such as BTC-USD or ETH-BTC.
// Pairs are dash-separated and quoted in USD or BTC.
func IsCryptoTicker(ticker string) bool {
	t := NormalizeTicker(ticker)
	if !strings.Contains(t, "-") {
		return false
	}
	return strings.Contains(t, "USD") || strings.Contains(t, "BTC")
}

// CryptoBase returns the base asset of a crypto pair (BTC for BTC-USD)
func CryptoBase(ticker string) string {
	t := NormalizeTicker(ticker)
	base, _, _ := strings.Cut(t, "-")
	return base
}
