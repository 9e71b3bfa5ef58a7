// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	MaxBodyBytes int64
}

// DefaultChiMiddlewareConfig returns the default middleware configuration
// for the given origin allow-list.
func DefaultChiMiddlewareConfig(origins []string) *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins:   origins,
		CORSAllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		CORSExposedHeaders:   []string{middleware.RequestIDHeader},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400,

		MaxBodyBytes: 1 << 20,
	}
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
	secLog *logging.SecurityLogger
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig(nil)
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   config.CORSExposedHeaders,
		AllowCredentials: config.CORSAllowCredentials,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
		secLog: logging.NewSecurityLogger(),
	}
}

// CORS returns the go-chi/cors middleware. It only decorates responses for
// allowed origins; OriginGuard must run first to reject the rest.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// OriginGuard rejects any request whose Origin header is not in the
// allow-list with 403 before a handler runs. Requests without an Origin
// header pass. Preflight requests are guarded too.
func (m *ChiMiddleware) OriginGuard() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || originAllowed(m.config.CORSAllowedOrigins, origin) {
				next.ServeHTTP(w, r)
				return
			}

			m.secLog.LogOriginRejected(
				middleware.GetRequestID(r.Context()),
				origin,
				r.Method,
				r.URL.Path,
				r.RemoteAddr,
				r.UserAgent(),
			)
			logging.Ctx(r.Context()).Debug().Err(ErrOriginNotAllowed).Msg("Cross-origin request refused")
			respondMessage(w, http.StatusForbidden, msgOriginRejected)
		})
	}
}

// BodyLimit caps request bodies. Reads past the cap fail with
// *http.MaxBytesError, which readBody turns into 413.
func (m *ChiMiddleware) BodyLimit() func(http.Handler) http.Handler {
	limit := m.config.MaxBodyBytes
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && limit > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed reports whether origin exactly matches an allow-list entry.
func originAllowed(allowed []string, origin string) bool {
	for _, o := range allowed {
		if o == origin {
			return true
		}
	}
	return false
}

// APISecurityHeaders returns middleware that adds security headers to API responses.
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
//   - Referrer-Policy: strict-origin-when-cross-origin
//   - Strict-Transport-Security when served over HTTPS
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// Check X-Forwarded-Proto for reverse proxy setups
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
