package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aristath/advisor/internal/di"
	"github.com/aristath/advisor/internal/modules/watchlist"
	"github.com/aristath/advisor/internal/scheduler"
	"github.com/aristath/advisor/pkg/logger"
)

// SystemHandlers handles system-wide monitoring and operations endpoints
type SystemHandlers struct {
	log         zerolog.Logger
	startupTime time.Time
	watchlist   *watchlist.Watchlist
	scheduler   *scheduler.Scheduler
	// Jobs (set from the DI wiring)
	watchlistCleanupJob scheduler.Job
	// Replaced in tests to avoid sampling the host
	stats func() (float64, float64)
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, container *di.Container, jobs *di.JobInstances) *SystemHandlers {
	h := &SystemHandlers{
		log:         logger.Component(log, "system"),
		startupTime: time.Now(),
	}
	if container != nil {
		h.watchlist = container.Watchlist
		h.scheduler = container.Scheduler
	}
	if jobs != nil {
		h.watchlistCleanupJob = jobs.WatchlistCleanup
	}
	h.stats = h.getSystemStats
	return h
}

// SystemStatusResponse represents the system status response
type SystemStatusResponse struct {
	Status            string  `json:"status"`
	UptimeSeconds     int64   `json:"uptime_seconds"`
	GoVersion         string  `json:"go_version"`
	Goroutines        int     `json:"goroutines"`
	CPUPercent        float64 `json:"cpu_percent"`
	RAMPercent        float64 `json:"ram_percent"`
	WatchlistCount    int     `json:"watchlist_count"`
	WatchlistCapacity int     `json:"watchlist_capacity"`
}

// HandleSystemStatus returns process and host status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPercent, ramPercent := h.stats()

	response := SystemStatusResponse{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.startupTime).Seconds()),
		GoVersion:     runtime.Version(),
		Goroutines:    runtime.NumGoroutine(),
		CPUPercent:    cpuPercent,
		RAMPercent:    ramPercent,
	}
	if h.watchlist != nil {
		response.WatchlistCount = h.watchlist.Len()
		response.WatchlistCapacity = h.watchlist.Capacity()
	}

	h.writeJSON(w, response)
}

// HandleTriggerWatchlistCleanup runs the watchlist cleanup job immediately
func (h *SystemHandlers) HandleTriggerWatchlistCleanup(w http.ResponseWriter, r *http.Request) {
	if h.watchlistCleanupJob == nil || h.scheduler == nil {
		h.writeJSON(w, map[string]string{"status": "error", "message": "Watchlist cleanup job not registered"})
		return
	}

	h.log.Info().Msg("Manual watchlist cleanup triggered")
	if err := h.scheduler.RunNow(h.watchlistCleanupJob); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, map[string]string{"status": "success", "message": "Watchlist cleanup completed"})
}

// getSystemStats calculates CPU and RAM usage percentages
// Uses a short interval (100ms) so the status call does not block for long
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

func (h *SystemHandlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
