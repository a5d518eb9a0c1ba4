// Package handlers provides HTTP handlers for trade calculations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/display"
	"github.com/aristath/advisor/internal/modules/trading"
	"github.com/aristath/advisor/internal/utils"
	"github.com/rs/zerolog"
)

// TradingHandlers contains HTTP handlers for trading API
type TradingHandlers struct {
	calculator *trading.Calculator
	currency   string
	log        zerolog.Logger
}

// NewTradingHandlers creates a new trading handlers instance
func NewTradingHandlers(calculator *trading.Calculator, currency string, log zerolog.Logger) *TradingHandlers {
	return &TradingHandlers{
		calculator: calculator,
		currency:   currency,
		log:        log.With().Str("handler", "trading").Logger(),
	}
}

// CalculateRequest is a trade to evaluate, optionally labelled with its ticker
type CalculateRequest struct {
	Ticker string `json:"ticker,omitempty"`
	domain.TradeParameters
}

// CalculateResponse is the trade result with its display strings
type CalculateResponse struct {
	Ticker string `json:"ticker,omitempty"`
	domain.TradeParameters
	domain.TradeResult
	Formatted display.TradeReport `json:"formatted"`
}

// HandleCalculate handles POST /api/trades/calculate
func (h *TradingHandlers) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.calculator.Evaluate(req.TradeParameters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrDomain) {
			h.log.Warn().Err(err).Str("ticker", req.Ticker).Msg("Trade calculation rejected")
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("Failed to calculate trade")
		h.writeError(w, http.StatusInternalServerError, "Failed to calculate trade")
		return
	}

	h.writeJSON(w, http.StatusOK, CalculateResponse{
		Ticker:          utils.NormalizeTicker(req.Ticker),
		TradeParameters: req.TradeParameters,
		TradeResult:     result,
		Formatted:       display.NewTradeReport(req.TradeParameters, result, h.currency),
	})
}

// writeJSON writes a JSON response
func (h *TradingHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *TradingHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
