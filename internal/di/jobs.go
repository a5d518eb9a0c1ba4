package di

import (
	"fmt"

	"github.com/aristath/advisor/internal/config"
	"github.com/aristath/advisor/internal/modules/watchlist"
	"github.com/rs/zerolog"
)

// RegisterJobs creates the background jobs and registers them with the scheduler
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) (*JobInstances, error) {
	cleanup := watchlist.NewCleanupJob(container.Watchlist, log)
	if err := container.Scheduler.AddJob(cfg.WatchlistSweepSchedule, cleanup); err != nil {
		return nil, fmt.Errorf("failed to register %s job: %w", cleanup.Name(), err)
	}

	return &JobInstances{
		WatchlistCleanup: cleanup,
	}, nil
}
