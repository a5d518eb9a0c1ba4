package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all watchlist routes
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/watchlist", func(r chi.Router) {
		r.Get("/", h.HandleList)              // Re-analyze every tracked security
		r.Post("/", h.HandleAdd)              // Start tracking a security
		r.Post("/clear", h.HandleClear)       // Stop tracking everything
		r.Put("/{ticker}", h.HandleUpdate)    // Replace a tracked snapshot
		r.Delete("/{ticker}", h.HandleRemove) // Stop tracking a security
	})
}
