package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/villert/popthings/internal/history"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(hist *history.DB, symbol string, authEnabled bool, token string) chi.Router {
	h := NewHandler(hist, symbol)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Post("/convert", h.Convert)
	r.Get("/history", h.History)

	return r
}
