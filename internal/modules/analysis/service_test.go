package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/prediction"
	"github.com/aristath/advisor/internal/modules/scoring/scorers"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictor struct {
	price float64
	calls int
	seen  domain.MarketSnapshot
}

func (p *stubPredictor) PredictSnapshot(s domain.MarketSnapshot) float64 {
	p.calls++
	p.seen = s
	return p.price
}

type stubScorer struct {
	seenTarget *float64
	seenSnap   domain.MarketSnapshot
}

func (s *stubScorer) ScoreSnapshot(snap domain.MarketSnapshot, targetPrice *float64) domain.Recommendation {
	s.seenSnap = snap
	s.seenTarget = targetPrice
	return domain.Recommendation{Label: domain.LabelHold, Reasons: []string{"stub"}, Score: 3}
}

func testLogger() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func newRealService() *Service {
	return NewService(
		prediction.NewPredictor(fixedSource(0.5), testLogger()),
		scorers.NewRecommendationScorer(),
		"USD",
		testLogger(),
	)
}

func TestAnalyze_RejectsNonPositivePrice(t *testing.T) {
	svc := NewService(&stubPredictor{}, &stubScorer{}, "USD", testLogger())

	for _, price := range []float64{0, -1, math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := svc.Analyze(domain.MarketSnapshot{Ticker: "AAPL", CurrentPrice: price})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestAnalyze_RejectsNonFinitePreviousClose(t *testing.T) {
	svc := NewService(&stubPredictor{}, &stubScorer{}, "USD", testLogger())

	_, err := svc.Analyze(domain.MarketSnapshot{Ticker: "AAPL", CurrentPrice: 100, PreviousClose: math.Inf(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalyze_UsesSuppliedTarget(t *testing.T) {
	predictor := &stubPredictor{price: 999}
	scorer := &stubScorer{}
	svc := NewService(predictor, scorer, "USD", testLogger())

	result, err := svc.Analyze(domain.MarketSnapshot{
		Ticker:        "msft",
		CurrentPrice:  100,
		PreviousClose: 100,
		TargetPrice:   domain.Float(120),
	})
	require.NoError(t, err)

	assert.Zero(t, predictor.calls)
	assert.False(t, result.TargetPredicted)
	require.NotNil(t, result.TargetPrice)
	assert.Equal(t, 120.0, *result.TargetPrice)
	assert.InDelta(t, 20.0, result.PotentialChangePct, 1e-9)
	assert.Equal(t, 120.0, *scorer.seenTarget)
	assert.Equal(t, "MSFT", result.Ticker)
	assert.Equal(t, "MSFT", result.CompanyName)
	assert.Equal(t, "N/A", result.Sector)
	assert.Equal(t, domain.AssetClassEquity, result.AssetClass)
	assert.Equal(t, "20.00%", result.Formatted.PotentialChange)
}

func TestAnalyze_PredictsMissingOrZeroTarget(t *testing.T) {
	for name, target := range map[string]*float64{"missing": nil, "zero": domain.Float(0)} {
		t.Run(name, func(t *testing.T) {
			predictor := &stubPredictor{price: 110}
			scorer := &stubScorer{}
			svc := NewService(predictor, scorer, "USD", testLogger())

			result, err := svc.Analyze(domain.MarketSnapshot{Ticker: "AAPL", CurrentPrice: 100, TargetPrice: target})
			require.NoError(t, err)

			assert.Equal(t, 1, predictor.calls)
			assert.True(t, result.TargetPredicted)
			require.NotNil(t, result.TargetPrice)
			assert.Equal(t, 110.0, *result.TargetPrice)
			assert.InDelta(t, 10.0, result.PotentialChangePct, 1e-9)
			assert.Equal(t, 110.0, *scorer.seenTarget)
		})
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	svc := newRealService()
	fixed := time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	result, err := svc.Analyze(domain.MarketSnapshot{
		Ticker:        "AAPL",
		CompanyName:   "Apple Inc",
		Sector:        "Technology",
		CurrentPrice:  102,
		PreviousClose: 100,
	})
	require.NoError(t, err)

	assert.True(t, result.TargetPredicted)
	assert.Equal(t, 111.18, *result.TargetPrice)
	assert.InDelta(t, 9.0, result.PotentialChangePct, 1e-9)
	assert.InDelta(t, 2.0, result.DailyChangePct, 1e-9)
	assert.Equal(t, domain.LabelHold, result.Recommendation.Label)
	assert.Equal(t, []string{"Target price suggests 9.0% change"}, result.Recommendation.Reasons)
	assert.Equal(t, "Apple Inc", result.CompanyName)
	assert.Equal(t, "Technology", result.Sector)
	assert.NotNil(t, result.History)
	assert.Empty(t, result.History)
	assert.Equal(t, fixed, result.AnalyzedAt)

	assert.Equal(t, "$102.00", result.Formatted.CurrentPrice)
	assert.Equal(t, "2.00%", result.Formatted.DailyChange)
	assert.Equal(t, "$111.18", result.Formatted.TargetPrice)
	assert.Equal(t, "9.00%", result.Formatted.PotentialChange)
	assert.Equal(t, "N/A", result.Formatted.PERatio)
}

func TestAnalyze_CryptoIgnoresFundamentals(t *testing.T) {
	svc := newRealService()

	result, err := svc.Analyze(domain.MarketSnapshot{
		Ticker:           "btc-usd",
		CurrentPrice:     50000,
		PreviousClose:    48000,
		PERatio:          domain.Float(30),
		DividendYield:    domain.Float(1.2),
		AnalystRating:    domain.Float(1.5),
		TargetPrice:      domain.Float(60000),
		FiftyTwoWeekHigh: domain.Float(52000),
		FiftyTwoWeekLow:  domain.Float(47000),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.AssetClassCrypto, result.AssetClass)
	assert.Equal(t, "BTC-USD", result.Ticker)
	assert.Equal(t, "BTC (BTC-USD)", result.CompanyName)
	assert.Equal(t, "Cryptocurrency", result.Sector)
	assert.Nil(t, result.PERatio)
	assert.Nil(t, result.DividendYield)
	assert.True(t, result.TargetPredicted)
	assert.Equal(t, 55041.67, *result.TargetPrice)
	assert.NotNil(t, result.FiftyTwoWeekHigh)
	for _, reason := range result.Recommendation.Reasons {
		assert.NotContains(t, reason, "Analysts")
		assert.NotContains(t, reason, "P/E")
	}
}

func TestAnalyze_ScorerSeesNormalizedSnapshot(t *testing.T) {
	scorer := &stubScorer{}
	svc := NewService(&stubPredictor{price: 1}, scorer, "USD", testLogger())

	_, err := svc.Analyze(domain.MarketSnapshot{
		Ticker:        "ETH-BTC",
		CurrentPrice:  0.05,
		AnalystRating: domain.Float(1),
	})
	require.NoError(t, err)

	assert.Nil(t, scorer.seenSnap.AnalystRating)
	assert.Equal(t, "ETH-BTC", scorer.seenSnap.Ticker)
}
