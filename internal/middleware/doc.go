// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP middleware shared by every route.

All middleware uses the standard func(http.Handler) http.Handler shape so it
can be mounted with chi's Use.

  - RequestID: accepts or generates X-Request-ID and stores it in the
    logging context together with a fresh correlation ID
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern so /movies/{id} is one series
  - Compression: gzip for clients sending Accept-Encoding: gzip

Usage:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.With(middleware.Compression).Get("/movies", h.ListMovies)
*/
package middleware
