// Package trading provides the realized trade profit calculator.
package trading

import (
	"fmt"
	"math"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/pkg/formulas"
	"github.com/rs/zerolog"
)

// Recovery horizon assumes the loss is recouped by reinvesting at a fixed
// annual return, compounded daily
const (
	RecoveryAnnualReturn = 0.07
	RecoveryDaysPerYear  = 365
)

// Calculator computes realized profit and loss for a completed round trip.
// It holds no state besides its logger and is safe for concurrent use.
type Calculator struct {
	log zerolog.Logger
}

// NewCalculator creates a new trade calculator
func NewCalculator(log zerolog.Logger) *Calculator {
	return &Calculator{
		log: log.With().Str("module", "trading").Logger(),
	}
}

// Evaluate computes the trade result for the given parameters.
// Returns domain.ErrInvalidInput for non-positive shares, negative or non-finite
// amounts and totals that overflow,
// and domain.ErrDomain when an underwater trade has no purchase value to recover against.
func (c *Calculator) Evaluate(p domain.TradeParameters) (domain.TradeResult, error) {
	if err := validate(p); err != nil {
		return domain.TradeResult{}, err
	}

	shares := float64(p.Shares)
	proceeds := shares * p.SellPrice
	purchase := shares * p.BuyPrice
	commissions := p.BuyCommission + p.SellCommission

	capitalGain := proceeds - purchase - commissions
	tax := math.Max(0, capitalGain) * p.TaxRatePct / 100
	totalCost := purchase + commissions + tax
	netProfit := proceeds - totalCost

	if !formulas.IsFinite(proceeds) || !formulas.IsFinite(totalCost) {
		return domain.TradeResult{}, fmt.Errorf("trade amounts overflow: %w", domain.ErrInvalidInput)
	}

	roi := 0.0
	if totalCost > 0 {
		roi = netProfit / totalCost * 100
	}

	result := domain.TradeResult{
		Proceeds:       proceeds,
		PurchasePrice:  purchase,
		TotalCost:      totalCost,
		CapitalGain:    capitalGain,
		Tax:            tax,
		NetProfit:      netProfit,
		ROIPct:         roi,
		BreakEvenPrice: (purchase + commissions) / shares,
	}

	if netProfit < 0 {
		days, err := RecoveryDays(totalCost, purchase)
		if err != nil {
			return domain.TradeResult{}, fmt.Errorf("recovery horizon for loss of %.2f: %w", netProfit, err)
		}
		result.RecoveryDays = days
	}

	c.log.Debug().
		Int("shares", p.Shares).
		Float64("net_profit", netProfit).
		Float64("roi_pct", roi).
		Int("recovery_days", result.RecoveryDays).
		Msg("Trade evaluated")

	return result, nil
}

// RecoveryDays returns the number of days of daily-compounded growth at
// RecoveryAnnualReturn needed to grow purchase into totalCost.
// Halfway values round to even.
func RecoveryDays(totalCost, purchase float64) (int, error) {
	if totalCost <= 0 || purchase <= 0 {
		return 0, fmt.Errorf("total cost %.2f and purchase %.2f must be positive: %w", totalCost, purchase, domain.ErrDomain)
	}

	dailyGrowth := math.Log(1 + RecoveryAnnualReturn/RecoveryDaysPerYear)
	days := math.Log(totalCost/purchase) / dailyGrowth
	return int(math.RoundToEven(days)), nil
}

func validate(p domain.TradeParameters) error {
	if p.Shares <= 0 {
		return fmt.Errorf("shares must be positive, got %d: %w", p.Shares, domain.ErrInvalidInput)
	}

	amounts := []struct {
		name  string
		value float64
	}{
		{"buy price", p.BuyPrice},
		{"sell price", p.SellPrice},
		{"buy commission", p.BuyCommission},
		{"sell commission", p.SellCommission},
		{"tax rate", p.TaxRatePct},
	}
	for _, a := range amounts {
		if !formulas.IsFinite(a.value) || a.value < 0 {
			return fmt.Errorf("%s must be finite and non-negative, got %v: %w", a.name, a.value, domain.ErrInvalidInput)
		}
	}
	return nil
}
