package watchlist

import (
	"time"

	"github.com/rs/zerolog"
)

// CleanupJob drops watchlist entries that outlived their TTL
type CleanupJob struct {
	watchlist *Watchlist
	now       func() time.Time
	log       zerolog.Logger
}

// NewCleanupJob creates a new watchlist cleanup job
func NewCleanupJob(watchlist *Watchlist, log zerolog.Logger) *CleanupJob {
	return &CleanupJob{
		watchlist: watchlist,
		now:       time.Now,
		log:       log.With().Str("job", "watchlist_cleanup").Logger(),
	}
}

// Run removes expired entries
func (j *CleanupJob) Run() error {
	deleted := j.watchlist.DeleteExpired(j.now())
	if deleted > 0 {
		j.log.Info().
			Int("deleted", deleted).
			Int("remaining", j.watchlist.Len()).
			Msg("Cleaned up expired watchlist entries")
	}
	return nil
}

// Name returns the job name for scheduling and logging
func (j *CleanupJob) Name() string {
	return "watchlist_cleanup"
}
