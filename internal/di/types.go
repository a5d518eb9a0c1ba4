/**
 * Package di provides dependency injection type definitions.
 *
 * This package defines the Container type which holds all application dependencies.
 * The Container is the single source of truth for all service instances and is
 * passed to handlers for access to services.
 */
package di

import (
	"github.com/aristath/advisor/internal/modules/analysis"
	"github.com/aristath/advisor/internal/modules/prediction"
	"github.com/aristath/advisor/internal/modules/scoring/scorers"
	"github.com/aristath/advisor/internal/modules/trading"
	"github.com/aristath/advisor/internal/modules/watchlist"
	"github.com/aristath/advisor/internal/scheduler"
)

// Container holds all application dependencies
type Container struct {
	// Analytics core
	Predictor  *prediction.Predictor
	Scorer     *scorers.RecommendationScorer
	Calculator *trading.Calculator

	// Services
	AnalysisService *analysis.Service
	Watchlist       *watchlist.Watchlist

	// Background jobs
	Scheduler *scheduler.Scheduler

	// Display currency for formatted output
	Currency string
}

// JobInstances holds references to registered jobs for manual triggering
type JobInstances struct {
	WatchlistCleanup scheduler.Job
}
