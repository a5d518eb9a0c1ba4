// Package analysis composes the predictor, scorer and formatters into a full
// per-security analysis.
package analysis

import (
	"fmt"
	"time"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/display"
	"github.com/aristath/advisor/internal/utils"
	"github.com/aristath/advisor/pkg/formulas"
	"github.com/rs/zerolog"
)

const (
	cryptoSector  = "Cryptocurrency"
	unknownSector = "N/A"
)

// TargetPredictor estimates a forward target price for a snapshot
type TargetPredictor interface {
	PredictSnapshot(s domain.MarketSnapshot) float64
}

// RecommendationScorer scores a snapshot against a target price
type RecommendationScorer interface {
	ScoreSnapshot(s domain.MarketSnapshot, targetPrice *float64) domain.Recommendation
}

// StockAnalysis is the complete analysis of one security
type StockAnalysis struct {
	Ticker             string                 `json:"ticker"`
	CompanyName        string                 `json:"company_name"`
	Sector             string                 `json:"sector"`
	AssetClass         domain.AssetClass      `json:"asset_class"`
	Price              float64                `json:"price"`
	DailyChangePct     float64                `json:"daily_change"`
	MarketCap          *float64               `json:"market_cap"`
	PERatio            *float64               `json:"pe_ratio"`
	DividendYield      *float64               `json:"dividend_yield"`
	FiftyTwoWeekHigh   *float64               `json:"fifty_two_week_high"`
	FiftyTwoWeekLow    *float64               `json:"fifty_two_week_low"`
	TargetPrice        *float64               `json:"target_price"`
	TargetPredicted    bool                   `json:"target_predicted"`
	PotentialChangePct float64                `json:"potential_change"`
	Recommendation     domain.Recommendation  `json:"buy_recommendation"`
	History            []domain.PricePoint    `json:"history"`
	Formatted          display.SnapshotReport `json:"formatted"`
	AnalyzedAt         time.Time              `json:"analyzed_at"`
}

// Service runs the analysis pipeline: predict a missing target, score, format
type Service struct {
	predictor TargetPredictor
	scorer    RecommendationScorer
	currency  string
	now       func() time.Time
	log       zerolog.Logger
}

// NewService creates a new analysis service formatting values in currency
func NewService(predictor TargetPredictor, scorer RecommendationScorer, currency string, log zerolog.Logger) *Service {
	return &Service{
		predictor: predictor,
		scorer:    scorer,
		currency:  currency,
		now:       time.Now,
		log:       log.With().Str("service", "analysis").Logger(),
	}
}

// Analyze produces the full analysis for a snapshot.
// Returns domain.ErrInvalidInput when the current price is not a positive finite
// number or the previous close is not finite.
func (s *Service) Analyze(snap domain.MarketSnapshot) (StockAnalysis, error) {
	if !formulas.IsFinite(snap.CurrentPrice) || snap.CurrentPrice <= 0 {
		return StockAnalysis{}, fmt.Errorf("current price must be positive, got %v: %w", snap.CurrentPrice, domain.ErrInvalidInput)
	}
	if !formulas.IsFinite(snap.PreviousClose) {
		return StockAnalysis{}, fmt.Errorf("previous close must be finite, got %v: %w", snap.PreviousClose, domain.ErrInvalidInput)
	}
	defer utils.OperationTimer("analyze", s.log)()

	snap = s.normalize(snap)

	target := snap.TargetPrice
	predicted := false
	if !snap.HasTargetPrice() {
		p := s.predictor.PredictSnapshot(snap)
		target = &p
		predicted = true
		s.log.Info().
			Str("ticker", snap.Ticker).
			Float64("target_price", p).
			Msg("Generated predicted target price")
	}

	potential := 0.0
	if target != nil {
		potential = (*target - snap.CurrentPrice) / snap.CurrentPrice * 100
	}

	rec := s.scorer.ScoreSnapshot(snap, target)

	history := snap.History
	if history == nil {
		history = []domain.PricePoint{}
	}

	return StockAnalysis{
		Ticker:             snap.Ticker,
		CompanyName:        snap.CompanyName,
		Sector:             snap.Sector,
		AssetClass:         assetClass(snap.Ticker),
		Price:              snap.CurrentPrice,
		DailyChangePct:     snap.DailyChangePct(),
		MarketCap:          snap.MarketCap,
		PERatio:            snap.PERatio,
		DividendYield:      snap.DividendYield,
		FiftyTwoWeekHigh:   snap.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:    snap.FiftyTwoWeekLow,
		TargetPrice:        target,
		TargetPredicted:    predicted,
		PotentialChangePct: potential,
		Recommendation:     rec,
		History:            history,
		Formatted:          display.NewSnapshotReport(snap, target, potential, s.currency),
		AnalyzedAt:         s.now(),
	}, nil
}

// normalize fills descriptive defaults and strips fundamentals crypto pairs do not have
func (s *Service) normalize(snap domain.MarketSnapshot) domain.MarketSnapshot {
	snap.Ticker = utils.NormalizeTicker(snap.Ticker)

	if assetClass(snap.Ticker) == domain.AssetClassCrypto {
		if snap.CompanyName == "" {
			snap.CompanyName = fmt.Sprintf("%s (%s)", utils.CryptoBase(snap.Ticker), snap.Ticker)
		}
		if snap.Sector == "" {
			snap.Sector = cryptoSector
		}
		snap.PERatio = nil
		snap.DividendYield = nil
		snap.AnalystRating = nil
		snap.TargetPrice = nil
		return snap
	}

	if snap.CompanyName == "" {
		snap.CompanyName = snap.Ticker
	}
	if snap.Sector == "" {
		snap.Sector = unknownSector
	}
	return snap
}

func assetClass(ticker string) domain.AssetClass {
	if utils.IsCryptoTicker(ticker) {
		return domain.AssetClassCrypto
	}
	return domain.AssetClassEquity
}
