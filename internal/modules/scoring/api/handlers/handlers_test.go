package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/prediction"
	"github.com/aristath/advisor/internal/modules/scoring/scorers"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func setupRouter() *chi.Mux {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	h := NewHandlers(
		prediction.NewPredictor(fixedSource(0.5), log),
		scorers.NewRecommendationScorer(),
		log,
	)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func post(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandlePredict(t *testing.T) {
	router := setupRouter()

	t.Run("derives daily change from previous close", func(t *testing.T) {
		w := post(t, router, "/scoring/predict", map[string]interface{}{
			"current_price":  102,
			"previous_close": 100,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp PredictResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 111.18, resp.PredictedPrice)
		assert.InDelta(t, 2.0, resp.DailyChangePct, 1e-9)
	})

	t.Run("explicit daily change wins", func(t *testing.T) {
		w := post(t, router, "/scoring/predict", map[string]interface{}{
			"current_price":    100,
			"previous_close":   50,
			"daily_change_pct": -5,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp PredictResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 106.5, resp.PredictedPrice)
		assert.Equal(t, -5.0, resp.DailyChangePct)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		w := post(t, router, "/scoring/predict", map[string]interface{}{"current_price": 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "current_price must be positive")
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/scoring/predict", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body")
	})
}

func TestHandleRecommend(t *testing.T) {
	router := setupRouter()

	w := post(t, router, "/scoring/recommend", domain.MarketSnapshot{
		Ticker:        "AAPL",
		CurrentPrice:  100,
		PreviousClose: 100,
		TargetPrice:   domain.Float(115),
		AnalystRating: domain.Float(2.2),
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var rec domain.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, domain.LabelBuy, rec.Label)
	assert.InDelta(t, 2.2, rec.Score, 1e-9)
	assert.Equal(t, []string{
		"Analysts are somewhat positive (rating: 2.2/5)",
		"Good upside potential: 15.0% to target price",
	}, rec.Reasons)
}

func TestHandleRecommend_WithoutTarget(t *testing.T) {
	router := setupRouter()

	w := post(t, router, "/scoring/recommend", domain.MarketSnapshot{CurrentPrice: 100})
	require.Equal(t, http.StatusOK, w.Code)

	var rec domain.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, domain.LabelHold, rec.Label)
	assert.Equal(t, []string{"Based on overall market analysis"}, rec.Reasons)
}

func TestHandleRecommend_ZeroTargetIsAbsent(t *testing.T) {
	router := setupRouter()

	w := post(t, router, "/scoring/recommend", map[string]interface{}{
		"current_price":  100,
		"previous_close": 100,
		"target_price":   0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var rec domain.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, domain.LabelHold, rec.Label)
	assert.InDelta(t, 3.0, rec.Score, 1e-9)
	assert.Equal(t, []string{"Based on overall market analysis"}, rec.Reasons)
}

func TestPositivePrice(t *testing.T) {
	tests := []struct {
		price    float64
		expected bool
	}{
		{100, true},
		{0.01, true},
		{0, false},
		{-1, false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{math.NaN(), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, positivePrice(tt.price), "price %v", tt.price)
	}
}

func TestHandlePredict_OutOfRangePrice(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/scoring/predict", bytes.NewBufferString(`{"current_price":1e400}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRecommend_InvalidPrice(t *testing.T) {
	router := setupRouter()

	w := post(t, router, "/scoring/recommend", domain.MarketSnapshot{CurrentPrice: -3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetWeights(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/scoring/weights", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Predictor struct {
				BlendWeights map[string]float64 `json:"blend_weights"`
				MarketReturn float64            `json:"market_return"`
				Jitter       map[string]float64 `json:"jitter"`
			} `json:"predictor"`
			Scorer struct {
				NeutralScore float64            `json:"neutral_score"`
				Labels       map[string]float64 `json:"labels"`
			} `json:"scorer"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 0.5, resp.Data.Predictor.BlendWeights["trend"])
	assert.Equal(t, 0.3, resp.Data.Predictor.BlendWeights["pe"])
	assert.Equal(t, 0.2, resp.Data.Predictor.BlendWeights["market"])
	assert.Equal(t, 0.08, resp.Data.Predictor.MarketReturn)
	assert.Equal(t, 0.95, resp.Data.Predictor.Jitter["min"])
	assert.InDelta(t, 1.05, resp.Data.Predictor.Jitter["max"], 1e-9)
	assert.Equal(t, 3.0, resp.Data.Scorer.NeutralScore)
	assert.Equal(t, 1.8, resp.Data.Scorer.Labels["strong_buy_max"])
	assert.Equal(t, 4.2, resp.Data.Scorer.Labels["strong_sell_min"])
}
