// Package domain provides core domain models and types.
package domain

// AssetClass represents the kind of instrument behind a ticker
type AssetClass string

const (
	// AssetClassEquity represents listed stocks with fundamentals
	AssetClassEquity AssetClass = "EQUITY"
	// AssetClassCrypto represents crypto pairs such as BTC-USD (no fundamentals)
	AssetClassCrypto AssetClass = "CRYPTO"
)

// PricePoint is a single daily close in a price history
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Price float64 `json:"price"`
}

// MarketSnapshot is the normalized per-security market data handed to the analytics core.
// Optional fundamentals are nil when the data provider did not supply them.
type MarketSnapshot struct {
	Ticker           string       `json:"ticker,omitempty"`
	CompanyName      string       `json:"company_name,omitempty"`
	Sector           string       `json:"sector,omitempty"`
	CurrentPrice     float64      `json:"current_price"`
	PreviousClose    float64      `json:"previous_close"`
	History          []PricePoint `json:"history,omitempty"`
	PERatio          *float64     `json:"pe_ratio,omitempty"`
	DividendYield    *float64     `json:"dividend_yield,omitempty"`
	FiftyTwoWeekHigh *float64     `json:"fifty_two_week_high,omitempty"`
	FiftyTwoWeekLow  *float64     `json:"fifty_two_week_low,omitempty"`
	AnalystRating    *float64     `json:"analyst_rating,omitempty"` // 1 = Strong Buy, 5 = Strong Sell
	TargetPrice      *float64     `json:"target_price,omitempty"`
	MarketCap        *float64     `json:"market_cap,omitempty"`
}

// DailyChangePct returns the percentage change of current over previous close.
// Returns 0 when previous close is not positive.
func DailyChangePct(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	return 0
}

// DailyChangePct returns the snapshot's daily percentage change
func (s MarketSnapshot) DailyChangePct() float64 {
	return DailyChangePct(s.CurrentPrice, s.PreviousClose)
}

// Closes returns the history prices in chronological order
func (s MarketSnapshot) Closes() []float64 {
	closes := make([]float64, len(s.History))
	for i, p := range s.History {
		closes[i] = p.Price
	}
	return closes
}

// HasTargetPrice reports whether an external, non-zero target price was supplied
func (s MarketSnapshot) HasTargetPrice() bool {
	return s.TargetPrice != nil && *s.TargetPrice != 0
}

// RecommendationLabel is the discrete investment recommendation
type RecommendationLabel string

const (
	LabelStrongBuy  RecommendationLabel = "Strong Buy"
	LabelBuy        RecommendationLabel = "Buy"
	LabelHold       RecommendationLabel = "Hold"
	LabelSell       RecommendationLabel = "Sell"
	LabelStrongSell RecommendationLabel = "Strong Sell"
)

// Recommendation is the scorer output.
// Reasons are kept in the order the factors were evaluated.
type Recommendation struct {
	Label   RecommendationLabel `json:"recommendation"`
	Reasons []string            `json:"reasons"`
	Score   float64             `json:"score"`
}

// TradeParameters describes a closed (or hypothetically closed) position
type TradeParameters struct {
	Shares         int     `json:"shares"`
	BuyPrice       float64 `json:"buy_price"`
	SellPrice      float64 `json:"sell_price"`
	BuyCommission  float64 `json:"buy_commission"`
	SellCommission float64 `json:"sell_commission"`
	TaxRatePct     float64 `json:"tax_rate_pct"`
}

// TradeResult is the realized profit/loss report for a trade
type TradeResult struct {
	Proceeds       float64 `json:"proceeds"`
	PurchasePrice  float64 `json:"purchase_price"` // shares * buy price
	TotalCost      float64 `json:"total_cost"`
	CapitalGain    float64 `json:"capital_gain"`
	Tax            float64 `json:"tax"`
	NetProfit      float64 `json:"net_profit"`
	ROIPct         float64 `json:"roi_pct"`
	BreakEvenPrice float64 `json:"break_even_price"`
	RecoveryDays   int     `json:"recovery_days"`
}

// Float returns a pointer to v, for building snapshots with optional fields
func Float(v float64) *float64 {
	return &v
}
