package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes mounts the full HTTP surface. Every /api endpoint is a pure
// read; there is no write path in this service.
func (h *Handler) Routes(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Get("/search", h.SearchPlayers)
			r.Get("/{steamid}", h.GetPlayer)
		})
		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/match", h.GetMatchLeaderboard)
			r.Get("/public", h.GetPublicLeaderboard)
			r.Get("/{metric}", h.GetMetricLeaderboard)
		})
		r.Route("/stats", func(r chi.Router) {
			r.Get("/summary", h.GetSummary)
			r.Get("/positions", h.GetPositions)
		})
	})

	return r
}
