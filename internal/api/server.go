package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured. An empty
// allowedOrigins list disables cross-origin access.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/age", h.Age)
		r.Post("/date-diff", h.DateDiff)
		r.Post("/date-add", h.DateAdd)

		r.Route("/time", func(r chi.Router) {
			r.Post("/combine", h.CombineTimes)
			r.Post("/span", h.TimeSpan)
		})

		r.Post("/duration", h.Duration)
		r.Post("/price", h.Price)
	})

	return r
}
