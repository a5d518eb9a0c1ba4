// Package handlers provides HTTP handlers for the watchlist.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/watchlist"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers provides HTTP handlers for the watchlist module
type Handlers struct {
	watchlist *watchlist.Watchlist
	log       zerolog.Logger
}

// NewHandlers creates a new watchlist handlers instance
func NewHandlers(wl *watchlist.Watchlist, log zerolog.Logger) *Handlers {
	return &Handlers{
		watchlist: wl,
		log:       log.With().Str("handler", "watchlist").Logger(),
	}
}

// HandleList handles GET /api/watchlist
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.watchlist.List())
}

// HandleAdd handles POST /api/watchlist
func (h *Handlers) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var snap domain.MarketSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.watchlist.Add(snap)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, result)
}

// HandleUpdate handles PUT /api/watchlist/{ticker}
func (h *Handlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var snap domain.MarketSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	snap.Ticker = chi.URLParam(r, "ticker")

	result, err := h.watchlist.Update(snap)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// HandleRemove handles DELETE /api/watchlist/{ticker}
func (h *Handlers) HandleRemove(w http.ResponseWriter, r *http.Request) {
	if err := h.watchlist.Remove(chi.URLParam(r, "ticker")); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Security removed",
	})
}

// HandleClear handles POST /api/watchlist/clear
func (h *Handlers) HandleClear(w http.ResponseWriter, r *http.Request) {
	cleared := h.watchlist.Clear()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "All stocks cleared",
		"cleared": cleared,
	})
}

func (h *Handlers) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, watchlist.ErrNotTracked):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, watchlist.ErrEmptyTicker),
		errors.Is(err, watchlist.ErrCapacityReached),
		errors.Is(err, watchlist.ErrAlreadyTracked),
		errors.Is(err, domain.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error().Err(err).Msg("Watchlist operation failed")
		h.writeError(w, http.StatusInternalServerError, "Watchlist operation failed")
	}
}

// writeJSON writes a JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
