// Package handlers provides HTTP handlers for security analysis.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/analysis"
	"github.com/rs/zerolog"
)

// Handlers provides HTTP handlers for the analysis module
type Handlers struct {
	service *analysis.Service
	log     zerolog.Logger
}

// NewHandlers creates a new analysis handlers instance
func NewHandlers(service *analysis.Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("handler", "analysis").Logger(),
	}
}

// HandleAnalyze handles POST /api/analysis/analyze
func (h *Handlers) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var snap domain.MarketSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Analyze(snap)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Str("ticker", snap.Ticker).Msg("Failed to analyze security")
		h.writeError(w, http.StatusInternalServerError, "Failed to analyze security")
		return
	}

	h.writeJSON(w, http.StatusOK, result)
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
