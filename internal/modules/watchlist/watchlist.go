// Package watchlist keeps a small, bounded set of tracked securities and
// re-analyzes them on demand.
package watchlist

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/analysis"
	"github.com/aristath/advisor/internal/utils"
	"github.com/aristath/advisor/pkg/formulas"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultCapacity is the number of securities tracked when none is configured
const DefaultCapacity = 5

// LastUpdateLayout formats the summary timestamp
const LastUpdateLayout = "2006-01-02 15:04:05"

var (
	ErrEmptyTicker     = errors.New("no ticker symbol provided")
	ErrCapacityReached = errors.New("watchlist is full")
	ErrAlreadyTracked  = errors.New("ticker is already being tracked")
	ErrNotTracked      = errors.New("ticker is not being tracked")
)

// Analyzer produces the analysis shown for each tracked security
type Analyzer interface {
	Analyze(snap domain.MarketSnapshot) (analysis.StockAnalysis, error)
}

// Entry is a tracked security and the last snapshot supplied for it
type Entry struct {
	ID        string                `json:"id"`
	Ticker    string                `json:"ticker"`
	Snapshot  domain.MarketSnapshot `json:"snapshot"`
	AddedAt   time.Time             `json:"added_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// Summary aggregates the tracked securities
type Summary struct {
	LastUpdate                string  `json:"last_update"`
	Count                     int     `json:"count"`
	AveragePotentialChangePct float64 `json:"average_potential_change_pct"`
}

// Listing is the current analysis of every tracked security
type Listing struct {
	Stocks    []analysis.StockAnalysis `json:"stocks"`
	Portfolio Summary                  `json:"portfolio"`
}

// Watchlist is an in-memory tracking list bounded by capacity.
// Entries not refreshed within ttl are dropped by DeleteExpired.
// It is safe for concurrent use.
type Watchlist struct {
	mu       sync.RWMutex
	entries  map[string]*Entry
	order    []string
	capacity int
	ttl      time.Duration
	analyzer Analyzer
	now      func() time.Time
	log      zerolog.Logger
}

// New creates a watchlist. A non-positive capacity uses DefaultCapacity and a
// non-positive ttl disables expiry.
func New(analyzer Analyzer, capacity int, ttl time.Duration, log zerolog.Logger) *Watchlist {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Watchlist{
		entries:  make(map[string]*Entry, capacity),
		capacity: capacity,
		ttl:      ttl,
		analyzer: analyzer,
		now:      time.Now,
		log:      log.With().Str("module", "watchlist").Logger(),
	}
}

// Capacity returns the maximum number of tracked securities
func (w *Watchlist) Capacity() int {
	return w.capacity
}

// Len returns the number of tracked securities
func (w *Watchlist) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.order)
}

// Add starts tracking a security and returns its analysis
func (w *Watchlist) Add(snap domain.MarketSnapshot) (analysis.StockAnalysis, error) {
	ticker := utils.NormalizeTicker(snap.Ticker)
	if ticker == "" {
		return analysis.StockAnalysis{}, ErrEmptyTicker
	}
	snap.Ticker = ticker

	result, err := w.analyzer.Analyze(snap)
	if err != nil {
		return analysis.StockAnalysis{}, fmt.Errorf("failed to analyze %s: %w", ticker, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.entries[ticker]; exists {
		return analysis.StockAnalysis{}, fmt.Errorf("%s: %w", ticker, ErrAlreadyTracked)
	}
	if len(w.order) >= w.capacity {
		return analysis.StockAnalysis{}, fmt.Errorf("maximum of %d stocks can be tracked: %w", w.capacity, ErrCapacityReached)
	}

	now := w.now()
	w.entries[ticker] = &Entry{
		ID:        uuid.New().String(),
		Ticker:    ticker,
		Snapshot:  snap,
		AddedAt:   now,
		UpdatedAt: now,
	}
	w.order = append(w.order, ticker)

	w.log.Info().Str("ticker", ticker).Int("count", len(w.order)).Msg("Security added to watchlist")
	return result, nil
}

// Update replaces the snapshot of a tracked security and refreshes its expiry
func (w *Watchlist) Update(snap domain.MarketSnapshot) (analysis.StockAnalysis, error) {
	ticker := utils.NormalizeTicker(snap.Ticker)
	if ticker == "" {
		return analysis.StockAnalysis{}, ErrEmptyTicker
	}
	snap.Ticker = ticker

	w.mu.RLock()
	_, exists := w.entries[ticker]
	w.mu.RUnlock()
	if !exists {
		return analysis.StockAnalysis{}, fmt.Errorf("%s: %w", ticker, ErrNotTracked)
	}

	result, err := w.analyzer.Analyze(snap)
	if err != nil {
		return analysis.StockAnalysis{}, fmt.Errorf("failed to analyze %s: %w", ticker, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	entry, exists := w.entries[ticker]
	if !exists {
		return analysis.StockAnalysis{}, fmt.Errorf("%s: %w", ticker, ErrNotTracked)
	}
	entry.Snapshot = snap
	entry.UpdatedAt = w.now()

	w.log.Debug().Str("ticker", ticker).Msg("Watchlist entry updated")
	return result, nil
}

// Remove stops tracking a security
func (w *Watchlist) Remove(ticker string) error {
	ticker = utils.NormalizeTicker(ticker)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.entries[ticker]; !exists {
		return fmt.Errorf("%s: %w", ticker, ErrNotTracked)
	}
	w.removeLocked(ticker)

	w.log.Info().Str("ticker", ticker).Msg("Security removed from watchlist")
	return nil
}

// Clear removes every tracked security and returns how many were removed
func (w *Watchlist) Clear() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(w.order)
	w.entries = make(map[string]*Entry, w.capacity)
	w.order = nil

	w.log.Info().Int("cleared", n).Msg("Watchlist cleared")
	return n
}

// Entries returns a copy of the tracked entries in insertion order
func (w *Watchlist) Entries() []Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()

	entries := make([]Entry, 0, len(w.order))
	for _, ticker := range w.order {
		entries = append(entries, *w.entries[ticker])
	}
	return entries
}

// List re-analyzes every tracked security in insertion order.
// Entries whose analysis fails are logged and left out of the listing.
func (w *Watchlist) List() Listing {
	defer utils.OperationTimer("watchlist_list", w.log)()

	entries := w.Entries()

	stocks := make([]analysis.StockAnalysis, 0, len(entries))
	potentials := make([]float64, 0, len(entries))
	for _, e := range entries {
		result, err := w.analyzer.Analyze(e.Snapshot)
		if err != nil {
			w.log.Warn().Err(err).Str("ticker", e.Ticker).Msg("Could not analyze tracked security")
			continue
		}
		stocks = append(stocks, result)
		potentials = append(potentials, result.PotentialChangePct)
	}

	return Listing{
		Stocks: stocks,
		Portfolio: Summary{
			LastUpdate:                w.now().Format(LastUpdateLayout),
			Count:                     len(stocks),
			AveragePotentialChangePct: formulas.Mean(potentials),
		},
	}
}

// DeleteExpired drops entries not updated within the ttl as of now and
// returns how many were dropped
func (w *Watchlist) DeleteExpired(now time.Time) int {
	if w.ttl <= 0 {
		return 0
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var expired []string
	for _, ticker := range w.order {
		if now.Sub(w.entries[ticker].UpdatedAt) > w.ttl {
			expired = append(expired, ticker)
		}
	}
	for _, ticker := range expired {
		w.removeLocked(ticker)
	}
	return len(expired)
}

func (w *Watchlist) removeLocked(ticker string) {
	delete(w.entries, ticker)
	for i, t := range w.order {
		if t == ticker {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}
