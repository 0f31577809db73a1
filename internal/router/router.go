// Package router assembles the HTTP route table. It is separate from main so
// tests can run the full stack over httptest.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jobtrack/jobtrack-go/internal/config"
	"github.com/jobtrack/jobtrack-go/internal/handler"
	"github.com/jobtrack/jobtrack-go/internal/middleware"
)

// New builds the router: request logging, panic recovery, a per-request
// timeout so a slow store cannot pin connections, CORS for the configured
// client origins, and the API routes. Every /api/jobs route requires a valid
// bearer token.
func New(cfg config.Config, auth *handler.AuthHandler, jobs *handler.JobHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", auth.HandleSignup)
		r.Post("/auth/login", auth.HandleLogin)

		r.Route("/jobs", func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))

			r.Post("/", jobs.HandleCreate)
			r.Get("/", jobs.HandleList)
			r.Get("/stats", jobs.HandleStats)
			r.Get("/{id}", jobs.HandleGet)
			r.Put("/{id}", jobs.HandleUpdate)
			r.Delete("/{id}", jobs.HandleDelete)
		})
	})

	return r
}
