// Package scorers provides security scoring implementations.
package scorers

import (
	"fmt"

	"github.com/aristath/advisor/internal/domain"
)

// Score scale: 1 is Strong Buy, 5 is Strong Sell, 3 is Hold
const (
	NeutralScore = 3.0
	MaxReasons   = 3

	StrongBuyMaxScore  = 1.8
	BuyMaxScore        = 2.5
	StrongSellMinScore = 4.2
	SellMinScore       = 3.5
)

// Analyst rating factor (rating on the 1-5 industry scale)
const (
	AnalystBuyBelow      = 2.0
	AnalystPositiveBelow = 2.5
	AnalystSellAbove     = 4.0
	AnalystNegativeAbove = 3.5
	AnalystStrongDelta   = 0.8
	AnalystModerateDelta = 0.4
)

// Target price factor, in percent of current price
const (
	UpsideHighAbovePct     = 20.0
	UpsideGoodAbovePct     = 10.0
	DownsideSignificantPct = -15.0
	DownsideSomePct        = -5.0
	UpsideStrongDelta      = 0.7
	UpsideModerateDelta    = 0.4
)

// Daily momentum factor
const (
	MomentumThresholdPct = 5.0
	MomentumDelta        = 0.2
)

// 52-week range factor, position in [0, 1]
const (
	RangeLowPosition     = 0.2
	RangeHighPosition    = 0.8
	RangeDefaultPosition = 0.5
	RangeDelta           = 0.5
)

// P/E ratio factor
const (
	PEOvervaluedAbove  = 50.0
	PEUndervaluedBelow = 15.0
	PEDelta            = 0.4
)

const genericReason = "Based on overall market analysis"

// ScoreInput holds the factors considered by the recommendation scorer.
// Nil optional fields skip their factor.
type ScoreInput struct {
	CurrentPrice     float64
	TargetPrice      *float64
	AnalystRating    *float64
	DailyChangePct   float64
	PERatio          *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
}

// RecommendationScorer turns market factors into a discrete recommendation.
// It is stateless and safe for concurrent use.
type RecommendationScorer struct{}

// NewRecommendationScorer creates a new recommendation scorer
func NewRecommendationScorer() *RecommendationScorer {
	return &RecommendationScorer{}
}

// Score evaluates the factors in a fixed order, starting from a neutral Hold:
// analyst rating, target upside, daily momentum, 52-week range position, P/E ratio.
// Each triggered factor moves the score and contributes a reason; the first
// MaxReasons reasons are kept in evaluation order.
func (s *RecommendationScorer) Score(in ScoreInput) domain.Recommendation {
	score := NeutralScore
	var reasons []string

	delta, reason := analystFactor(in.AnalystRating)
	score += delta
	reasons = appendReason(reasons, reason)

	delta, reason = upsideFactor(in.CurrentPrice, in.TargetPrice)
	score += delta
	reasons = appendReason(reasons, reason)

	delta, reason = momentumFactor(in.DailyChangePct)
	score += delta
	reasons = appendReason(reasons, reason)

	delta, reason = rangeFactor(in.CurrentPrice, in.FiftyTwoWeekHigh, in.FiftyTwoWeekLow)
	score += delta
	reasons = appendReason(reasons, reason)

	delta, reason = peFactor(in.PERatio)
	score += delta
	reasons = appendReason(reasons, reason)

	if len(reasons) == 0 {
		reasons = []string{genericReason}
	}
	if len(reasons) > MaxReasons {
		reasons = reasons[:MaxReasons]
	}

	return domain.Recommendation{
		Label:   LabelForScore(score),
		Reasons: reasons,
		Score:   score,
	}
}

// ScoreSnapshot scores a market snapshot against the given target price
// (which may be the snapshot's own target or a predicted one)
func (s *RecommendationScorer) ScoreSnapshot(snap domain.MarketSnapshot, targetPrice *float64) domain.Recommendation {
	return s.Score(ScoreInput{
		CurrentPrice:     snap.CurrentPrice,
		TargetPrice:      targetPrice,
		AnalystRating:    snap.AnalystRating,
		DailyChangePct:   snap.DailyChangePct(),
		PERatio:          snap.PERatio,
		FiftyTwoWeekHigh: snap.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  snap.FiftyTwoWeekLow,
	})
}

// LabelForScore maps a cumulative score to its label.
// Thresholds are checked in order and the first match wins; Hold is the fallback.
func LabelForScore(score float64) domain.RecommendationLabel {
	switch {
	case score <= StrongBuyMaxScore:
		return domain.LabelStrongBuy
	case score <= BuyMaxScore:
		return domain.LabelBuy
	case score >= StrongSellMinScore:
		return domain.LabelStrongSell
	case score >= SellMinScore:
		return domain.LabelSell
	default:
		return domain.LabelHold
	}
}

func appendReason(reasons []string, reason string) []string {
	if reason == "" {
		return reasons
	}
	return append(reasons, reason)
}

func analystFactor(rating *float64) (float64, string) {
	if rating == nil {
		return 0, ""
	}
	r := *rating
	switch {
	case r < AnalystBuyBelow:
		return -AnalystStrongDelta, fmt.Sprintf("Analysts recommend buying (rating: %.1f/5)", r)
	case r < AnalystPositiveBelow:
		return -AnalystModerateDelta, fmt.Sprintf("Analysts are somewhat positive (rating: %.1f/5)", r)
	case r > AnalystSellAbove:
		return AnalystStrongDelta, fmt.Sprintf("Analysts recommend selling (rating: %.1f/5)", r)
	case r > AnalystNegativeAbove:
		return AnalystModerateDelta, fmt.Sprintf("Analysts are somewhat negative (rating: %.1f/5)", r)
	}
	return 0, ""
}

// UpsidePct is the percentage move from current to target price
func UpsidePct(currentPrice, targetPrice float64) float64 {
	return (targetPrice - currentPrice) / currentPrice * 100
}

func upsideFactor(currentPrice float64, targetPrice *float64) (float64, string) {
	if targetPrice == nil || currentPrice <= 0 {
		return 0, ""
	}
	upside := UpsidePct(currentPrice, *targetPrice)
	switch {
	case upside > UpsideHighAbovePct:
		return -UpsideStrongDelta, fmt.Sprintf("High upside potential: %.1f%% to target price", upside)
	case upside > UpsideGoodAbovePct:
		return -UpsideModerateDelta, fmt.Sprintf("Good upside potential: %.1f%% to target price", upside)
	case upside < DownsideSignificantPct:
		return UpsideStrongDelta, fmt.Sprintf("Significant downside risk: %.1f%% to target price", upside)
	case upside < DownsideSomePct:
		return UpsideModerateDelta, fmt.Sprintf("Some downside risk: %.1f%% to target price", upside)
	}
	return 0, fmt.Sprintf("Target price suggests %.1f%% change", upside)
}

// A large up day may be overbought, a large down day may be oversold
func momentumFactor(dailyChangePct float64) (float64, string) {
	switch {
	case dailyChangePct > MomentumThresholdPct:
		return MomentumDelta, fmt.Sprintf("Stock is up %.1f%% today (potential momentum)", dailyChangePct)
	case dailyChangePct < -MomentumThresholdPct:
		return -MomentumDelta, fmt.Sprintf("Stock is down %.1f%% today (potential value opportunity)", dailyChangePct)
	}
	return 0, ""
}

// RangePosition places price within [low, high]; a degenerate range is the midpoint
func RangePosition(price, high, low float64) float64 {
	if high-low > 0 {
		return (price - low) / (high - low)
	}
	return RangeDefaultPosition
}

func rangeFactor(currentPrice float64, high, low *float64) (float64, string) {
	if high == nil || low == nil || currentPrice <= 0 {
		return 0, ""
	}
	position := RangePosition(currentPrice, *high, *low)
	switch {
	case position < RangeLowPosition:
		return -RangeDelta, "Stock is near its 52-week low (potential value)"
	case position > RangeHighPosition:
		return RangeDelta, "Stock is near its 52-week high (potential overvaluation)"
	}
	return 0, fmt.Sprintf("Stock is trading at %.1f%% of its 52-week range", position*100)
}

func peFactor(peRatio *float64) (float64, string) {
	if peRatio == nil || *peRatio <= 0 {
		return 0, ""
	}
	pe := *peRatio
	switch {
	case pe > PEOvervaluedAbove:
		return PEDelta, fmt.Sprintf("High P/E ratio of %.1f (potentially overvalued)", pe)
	case pe < PEUndervaluedBelow:
		return -PEDelta, fmt.Sprintf("Low P/E ratio of %.1f (potentially undervalued)", pe)
	}
	return 0, fmt.Sprintf("P/E ratio of %.1f is within normal range", pe)
}
