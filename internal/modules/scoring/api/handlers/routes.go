package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all scoring routes
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/scoring", func(r chi.Router) {
		r.Post("/predict", h.HandlePredict)     // Target price estimate
		r.Post("/recommend", h.HandleRecommend) // Recommendation for a snapshot
		r.Get("/weights", h.HandleGetWeights)   // Heuristic constants
	})
}
