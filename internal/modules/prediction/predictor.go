// Package prediction estimates a forward target price for securities that have
// no externally supplied analyst target.
package prediction

import (
	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/pkg/formulas"
	"github.com/rs/zerolog"
)

// Predictor blends a price-trend projection, a P/E tier projection and the average
// market return into a target price, then applies a bounded random multiplier.
//
// Predict never fails: if the computation produces a non-finite value (for example
// a zero prior average), it falls back to FallbackGrowth over the current price.
type Predictor struct {
	params Params
	rnd    RandomSource
	log    zerolog.Logger
}

// NewPredictor creates a predictor with the default heuristic.
// A nil source is replaced by a time-seeded locked source.
func NewPredictor(rnd RandomSource, log zerolog.Logger) *Predictor {
	return NewPredictorWithParams(DefaultParams(), rnd, log)
}

// NewPredictorWithParams creates a predictor with custom heuristic constants
func NewPredictorWithParams(params Params, rnd RandomSource, log zerolog.Logger) *Predictor {
	if rnd == nil {
		rnd = NewLockedSource(0)
	}
	return &Predictor{
		params: params,
		rnd:    rnd,
		log:    log.With().Str("module", "prediction").Logger(),
	}
}

// Params returns the heuristic constants in use
func (p *Predictor) Params() Params {
	return p.params
}

// Predict returns the estimated target price rounded to cents
func (p *Predictor) Predict(currentPrice float64, history []domain.PricePoint, peRatio *float64, dailyChangePct float64) float64 {
	baseline, randomized := p.Baseline(currentPrice, history, peRatio, dailyChangePct)

	predicted := baseline
	if randomized {
		predicted *= p.params.JitterMin + p.rnd.Float64()*p.params.JitterRange
	}

	if !formulas.IsFinite(predicted) {
		p.log.Warn().
			Float64("current_price", currentPrice).
			Int("history_points", len(history)).
			Msg("Target price computation not finite, using fallback growth")
		return p.fallback(currentPrice)
	}

	return formulas.Round2(predicted)
}

// PredictSnapshot predicts a target price from a market snapshot
func (p *Predictor) PredictSnapshot(s domain.MarketSnapshot) float64 {
	return p.Predict(s.CurrentPrice, s.History, s.PERatio, s.DailyChangePct())
}

// Baseline returns the unrounded prediction before the random multiplier.
// randomized reports whether Predict applies the random multiplier to it, which is
// the case only for the trend branch (history longer than MinHistoryPoints).
func (p *Predictor) Baseline(currentPrice float64, history []domain.PricePoint, peRatio *float64, dailyChangePct float64) (baseline float64, randomized bool) {
	if len(history) <= p.params.MinHistoryPoints {
		return currentPrice * (1 + p.momentumGrowth(dailyChangePct)), false
	}

	trend := currentPrice * (1 + p.trendFactor(history, dailyChangePct)*p.params.TrendAmplification)
	pe := currentPrice * p.peMultiplier(peRatio)
	market := currentPrice * (1 + p.params.MarketReturn)

	blended := trend*p.params.TrendWeight + pe*p.params.PEWeight + market*p.params.MarketWeight
	return blended, true
}

// trendFactor compares the last window of closes with the window before it.
// Short histories use the daily change as a proxy.
func (p *Predictor) trendFactor(history []domain.PricePoint, dailyChangePct float64) float64 {
	if len(history) <= p.params.TrendHistoryPoints {
		return dailyChangePct / 100
	}

	closes := make([]float64, len(history))
	for i, point := range history {
		closes[i] = point.Price
	}

	recent, prior, ok := formulas.TrailingAverages(closes, p.params.TrendWindow)
	if !ok {
		return dailyChangePct / 100
	}
	return recent/prior - 1
}

func (p *Predictor) peMultiplier(peRatio *float64) float64 {
	if peRatio == nil || *peRatio <= 0 {
		return 1
	}
	for _, tier := range p.params.PETiers {
		if *peRatio > tier.Above {
			return tier.Multiplier
		}
	}
	return p.params.PEFloorMultiplier
}

// momentumGrowth is the short-history growth rate: the market return nudged by
// the daily change, with negative moves weighted less than positive ones.
func (p *Predictor) momentumGrowth(dailyChangePct float64) float64 {
	weight := p.params.NegativeMomentumWeight
	if dailyChangePct > 0 {
		weight = p.params.PositiveMomentumWeight
	}
	return p.params.MarketReturn + dailyChangePct/100*weight
}

func (p *Predictor) fallback(currentPrice float64) float64 {
	return formulas.Round2(currentPrice * (1 + p.params.FallbackGrowth))
}
