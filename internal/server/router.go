package server

import (
	"lol-tracker/internal/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// NewRouter serves the REST API used by the web frontend and the Connect
// procedures from one handler.
func NewRouter(trackerServer *TrackerServer, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/summoner", func(r chi.Router) {
			r.Get("/", trackerServer.handleGetSummoner)
			r.Get("/search", trackerServer.handleSearch)
		})
		r.Get("/matches/{puuid}", trackerServer.handleGetMatches)
		r.Route("/tiers", func(r chi.Router) {
			r.Post("/", trackerServer.handleGetTiers)
			r.Get("/{puuid}/history", trackerServer.handleTierHistory)
		})
	})

	for path, h := range trackerServer.Handlers() {
		r.Handle(path, h)
	}

	return r
}
