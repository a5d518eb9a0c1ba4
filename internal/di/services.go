package di

import (
	"github.com/aristath/advisor/internal/config"
	"github.com/aristath/advisor/internal/modules/analysis"
	"github.com/aristath/advisor/internal/modules/prediction"
	"github.com/aristath/advisor/internal/modules/scoring/scorers"
	"github.com/aristath/advisor/internal/modules/trading"
	"github.com/aristath/advisor/internal/modules/watchlist"
	"github.com/aristath/advisor/internal/scheduler"
	"github.com/rs/zerolog"
)

// InitializeServices creates all services and stores them in the container
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	container.Currency = cfg.Currency

	// Analytics core (stateless apart from the predictor's random source)
	container.Predictor = prediction.NewPredictor(prediction.NewLockedSource(cfg.PredictorSeed), log)
	container.Scorer = scorers.NewRecommendationScorer()
	container.Calculator = trading.NewCalculator(log)

	// Analysis composes predictor, scorer and formatters
	container.AnalysisService = analysis.NewService(container.Predictor, container.Scorer, cfg.Currency, log)

	// Bounded tracking list
	container.Watchlist = watchlist.New(container.AnalysisService, cfg.WatchlistCapacity, cfg.WatchlistTTL, log)

	container.Scheduler = scheduler.New(log)

	log.Info().
		Int64("predictor_seed", cfg.PredictorSeed).
		Int("watchlist_capacity", cfg.WatchlistCapacity).
		Str("currency", cfg.Currency).
		Msg("Services initialized")

	return nil
}
