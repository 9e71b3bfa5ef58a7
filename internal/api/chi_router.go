// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/middleware"
)

// Router wires the handler and middleware into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router using the security and server settings of cfg.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig(cfg.Security.CORSOrigins)
	mwConfig.MaxBodyBytes = cfg.Server.MaxBodyBytes

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(middleware.RequestID)               // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)               // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)            // Recover from panics
	r.Use(middleware.PrometheusMetrics)       // Counts rejected requests too
	r.Use(router.chiMiddleware.OriginGuard()) // 403 before CORS and handlers
	r.Use(router.chiMiddleware.CORS())        // Global to handle OPTIONS preflight
	r.Use(APISecurityHeaders())
	r.Use(router.chiMiddleware.BodyLimit())

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Get("/", router.handler.Root)

	// ========================
	// Movie Collection
	// ========================
	r.Route("/movies", func(r chi.Router) {
		r.Use(middleware.Compression)

		r.Get("/", router.handler.ListMovies)
		r.Post("/", router.handler.CreateMovie)
		r.Get("/{id}", router.handler.GetMovie)
		r.Patch("/{id}", router.handler.UpdateMovie)
		r.Delete("/{id}", router.handler.DeleteMovie)
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/ws", router.handler.WebSocket)

	return r
}
