package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/boardlog/backend/internal/setup"
	mw "github.com/itchan-dev/boardlog/shared/middleware"
	"github.com/itchan-dev/boardlog/shared/middleware/metrics"
)

// New creates the chi router with the middleware stack and every route.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestLog)
	r.Use(metrics.Middleware)

	// setup CORS for the factory UI
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", mw.RequestIDHeader},
		ExposedHeaders: []string{mw.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Use(mw.SecurityHeaders)

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/db-test", h.DBTest)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/test-runs", h.ListTestRuns)
		r.Post("/test-runs", h.CreateTestRun)
		r.Get("/board/{serial}", h.GetBoard)
	})

	return r
}
