package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/settle/internal/auth"
	"github.com/MrJamesThe3rd/settle/internal/http/export"
	"github.com/MrJamesThe3rd/settle/internal/http/settlement"
	"github.com/MrJamesThe3rd/settle/internal/http/vote"
	"github.com/MrJamesThe3rd/settle/internal/metrics"
)

type Options struct {
	CORSOrigins    []string
	MetricsEnabled bool
}

func New(
	opts Options,
	tokens *auth.JWTManager,
	settlementsV1 *settlement.Handler,
	votesV1 *vote.Handler,
	exportsV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if opts.MetricsEnabled {
		router.Use(metrics.Middleware)
		router.Handle("/metrics", metrics.Handler())
	}

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))

		settlementsV1.Routes(r)
		votesV1.Routes(r)
		exportsV1.Routes(r)
	})

	return router
}
