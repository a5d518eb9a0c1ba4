package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/trading"
)

// TradeReport holds the display strings for a trade calculation
type TradeReport struct {
	Proceeds       string `json:"proceeds"`
	TotalCost      string `json:"total_cost"`
	PurchasePrice  string `json:"purchase_price"`
	BuyCommission  string `json:"buy_commission"`
	SellCommission string `json:"sell_commission"`
	Tax            string `json:"tax"`
	CapitalGain    string `json:"capital_gain"`
	NetProfit      string `json:"net_profit"`
	ROI            string `json:"roi"`
	BreakEven      string `json:"break_even"`
	DaysToRecover  string `json:"days_to_recover"`
}

// NewTradeReport formats a trade result in the given currency
func NewTradeReport(p domain.TradeParameters, r domain.TradeResult, code string) TradeReport {
	return TradeReport{
		Proceeds:       FormatCurrency(r.Proceeds, code),
		TotalCost:      FormatCurrency(r.TotalCost, code),
		PurchasePrice:  FormatCurrency(r.PurchasePrice, code),
		BuyCommission:  FormatCurrency(p.BuyCommission, code),
		SellCommission: FormatCurrency(p.SellCommission, code),
		Tax:            FormatCurrency(r.Tax, code),
		CapitalGain:    FormatCurrency(r.CapitalGain, code),
		NetProfit:      FormatCurrency(r.NetProfit, code),
		ROI:            FormatPercent(r.ROIPct),
		BreakEven:      FormatCurrency(r.BreakEvenPrice, code),
		DaysToRecover:  FormatDays(r.RecoveryDays),
	}
}

// SnapshotReport holds the display strings for a market snapshot
type SnapshotReport struct {
	CurrentPrice     string `json:"current_price"`
	DailyChange      string `json:"daily_change"`
	MarketCap        string `json:"market_cap"`
	PERatio          string `json:"pe_ratio"`
	DividendYield    string `json:"dividend_yield"`
	FiftyTwoWeekHigh string `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  string `json:"fifty_two_week_low"`
	TargetPrice      string `json:"target_price"`
	PotentialChange  string `json:"potential_change"`
}

// NewSnapshotReport formats a snapshot together with its (possibly predicted)
// target price and the potential change towards it
func NewSnapshotReport(s domain.MarketSnapshot, targetPrice *float64, potentialChangePct float64, code string) SnapshotReport {
	marketCap := 0.0
	if s.MarketCap != nil {
		marketCap = *s.MarketCap
	}

	potential := NotAvailable
	if targetPrice != nil && *targetPrice != 0 {
		potential = FormatPercent(potentialChangePct)
	}

	return SnapshotReport{
		CurrentPrice:     FormatCurrency(s.CurrentPrice, code),
		DailyChange:      FormatPercent(s.DailyChangePct()),
		MarketCap:        FormatLargeNumber(marketCap, code),
		PERatio:          FormatOptionalRatio(s.PERatio),
		DividendYield:    FormatOptionalPercent(s.DividendYield),
		FiftyTwoWeekHigh: FormatOptionalCurrency(s.FiftyTwoWeekHigh, code),
		FiftyTwoWeekLow:  FormatOptionalCurrency(s.FiftyTwoWeekLow, code),
		TargetPrice:      FormatOptionalCurrency(targetPrice, code),
		PotentialChange:  potential,
	}
}

// WriteProfitReport writes the plain-text profit report for a trade
func WriteProfitReport(w io.Writer, ticker string, p domain.TradeParameters, r domain.TradeResult, code string) error {
	var b strings.Builder

	b.WriteString("\nPROFIT REPORT")
	if ticker != "" {
		fmt.Fprintf(&b, " (%s)", strings.ToUpper(ticker))
	}
	b.WriteString("\n=============\n\n")

	fmt.Fprintf(&b, "Proceeds\n%s\n\n", FormatCurrency(r.Proceeds, code))
	fmt.Fprintf(&b, "Cost\n%s\n\n", FormatCurrency(r.TotalCost, code))

	b.WriteString("Cost details:\n")
	fmt.Fprintf(&b, "Total Purchase Price\n%d × %s = %s\n",
		p.Shares, FormatCurrency(p.BuyPrice, code), FormatCurrency(r.PurchasePrice, code))
	fmt.Fprintf(&b, "Buy Commission = %s\n", FormatCurrency(p.BuyCommission, code))
	fmt.Fprintf(&b, "Sell Commission = %s\n", FormatCurrency(p.SellCommission, code))
	fmt.Fprintf(&b, "Tax on Capital Gain = %s of %s = %s\n\n",
		FormatPercent(p.TaxRatePct), FormatCurrency(r.CapitalGain, code), FormatCurrency(r.Tax, code))

	fmt.Fprintf(&b, "Net Profit\n%s\n\n", FormatCurrency(r.NetProfit, code))
	fmt.Fprintf(&b, "Return on Investment\n%s\n\n", FormatPercent(r.ROIPct))
	fmt.Fprintf(&b, "To break even, you should have a final share price of\n%s\n", FormatCurrency(r.BreakEvenPrice, code))

	if r.RecoveryDays > 0 {
		fmt.Fprintf(&b, "\nDays to recover the loss at %.0f%% a year\n%s\n",
			trading.RecoveryAnnualReturn*100, FormatDays(r.RecoveryDays))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
