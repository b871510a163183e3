package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prn-tf/tempus-tracker/internal/observability"
)

// RouterConfig contains everything the router wires together.
type RouterConfig struct {
	AuthHandler     *AuthHandler
	ActivityHandler *ActivityHandler
	AuthMiddleware  func(http.Handler) http.Handler
	Logger          zerolog.Logger
}

// NewRouter builds the API router. /auth/login and /health are public;
// everything else requires a valid session token.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(observability.RequestMetrics)

	r.Get("/health", handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthMiddleware)
			r.Post("/logout", cfg.AuthHandler.Logout)
		})
	})

	r.Route("/activity", func(r chi.Router) {
		r.Use(cfg.AuthMiddleware)
		r.Post("/start", cfg.ActivityHandler.Start)
		r.Post("/stop", cfg.ActivityHandler.Stop)
		r.Get("/elapsed/{activityName}", cfg.ActivityHandler.Elapsed)
		r.Get("/results", cfg.ActivityHandler.Results)
	})

	return r
}

// handleHealth handles health check requests.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
