// Package handlers provides HTTP handlers for scoring API.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/prediction"
	"github.com/aristath/advisor/internal/modules/scoring/scorers"
	"github.com/aristath/advisor/pkg/formulas"
	"github.com/rs/zerolog"
)

// Handlers provides HTTP handlers for scoring module
type Handlers struct {
	predictor *prediction.Predictor
	scorer    *scorers.RecommendationScorer
	log       zerolog.Logger
}

// NewHandlers creates a new scoring handlers instance
func NewHandlers(predictor *prediction.Predictor, scorer *scorers.RecommendationScorer, log zerolog.Logger) *Handlers {
	return &Handlers{
		predictor: predictor,
		scorer:    scorer,
		log:       log.With().Str("module", "scoring_handlers").Logger(),
	}
}

// PredictRequest represents a request for a target price estimate
type PredictRequest struct {
	CurrentPrice   float64             `json:"current_price"`
	PreviousClose  float64             `json:"previous_close"`
	History        []domain.PricePoint `json:"history"`
	PERatio        *float64            `json:"pe_ratio,omitempty"`
	DailyChangePct *float64            `json:"daily_change_pct,omitempty"` // derived from previous_close when omitted
}

// PredictResponse represents the estimated target price
type PredictResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
	DailyChangePct float64 `json:"daily_change_pct"`
}

// HandlePredict handles POST /api/scoring/predict
func (h *Handlers) HandlePredict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode predict request")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !positivePrice(req.CurrentPrice) {
		h.writeError(w, http.StatusBadRequest, "current_price must be positive")
		return
	}

	dailyChange := domain.DailyChangePct(req.CurrentPrice, req.PreviousClose)
	if req.DailyChangePct != nil {
		dailyChange = *req.DailyChangePct
	}

	predicted := h.predictor.Predict(req.CurrentPrice, req.History, req.PERatio, dailyChange)

	h.writeJSON(w, http.StatusOK, PredictResponse{
		PredictedPrice: predicted,
		DailyChangePct: dailyChange,
	})
}

// HandleRecommend handles POST /api/scoring/recommend
// Scores the snapshot against its own target price; no prediction is made.
// A zero target is treated as absent.
func (h *Handlers) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	var snap domain.MarketSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode recommend request")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !positivePrice(snap.CurrentPrice) {
		h.writeError(w, http.StatusBadRequest, "current_price must be positive")
		return
	}

	target := snap.TargetPrice
	if !snap.HasTargetPrice() {
		target = nil
	}

	h.writeJSON(w, http.StatusOK, h.scorer.ScoreSnapshot(snap, target))
}

// HandleGetWeights handles GET /api/scoring/weights
// Returns the constants of the prediction and recommendation heuristics
func (h *Handlers) HandleGetWeights(w http.ResponseWriter, r *http.Request) {
	params := h.predictor.Params()

	peTiers := make([]map[string]float64, 0, len(params.PETiers))
	for _, tier := range params.PETiers {
		peTiers = append(peTiers, map[string]float64{
			"above":      tier.Above,
			"multiplier": tier.Multiplier,
		})
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"predictor": map[string]interface{}{
				"blend_weights": map[string]float64{
					"trend":  params.TrendWeight,
					"pe":     params.PEWeight,
					"market": params.MarketWeight,
				},
				"market_return":       params.MarketReturn,
				"trend_amplification": params.TrendAmplification,
				"trend_window":        params.TrendWindow,
				"min_history_points":  params.MinHistoryPoints,
				"pe_tiers":            peTiers,
				"pe_floor_multiplier": params.PEFloorMultiplier,
				"jitter": map[string]float64{
					"min": params.JitterMin,
					"max": params.JitterMin + params.JitterRange,
				},
				"fallback_growth": params.FallbackGrowth,
			},
			"scorer": map[string]interface{}{
				"neutral_score": scorers.NeutralScore,
				"max_reasons":   scorers.MaxReasons,
				"labels": map[string]float64{
					"strong_buy_max":  scorers.StrongBuyMaxScore,
					"buy_max":         scorers.BuyMaxScore,
					"sell_min":        scorers.SellMinScore,
					"strong_sell_min": scorers.StrongSellMinScore,
				},
				"deltas": map[string]float64{
					"analyst_strong":   scorers.AnalystStrongDelta,
					"analyst_moderate": scorers.AnalystModerateDelta,
					"upside_strong":    scorers.UpsideStrongDelta,
					"upside_moderate":  scorers.UpsideModerateDelta,
					"momentum":         scorers.MomentumDelta,
					"range":            scorers.RangeDelta,
					"pe":               scorers.PEDelta,
				},
			},
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
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

// positivePrice reports whether v is a usable quote
func positivePrice(v float64) bool {
	return formulas.IsFinite(v) && v > 0
}
