// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP surface of Marquee: a chi router, the movie
collection handlers, operational endpoints, and the cross-origin guard.

# Endpoints

	GET    /               {"message": "hola mundo"}
	GET    /movies         all movies, optional ?genre= filter (case-insensitive)
	GET    /movies/{id}    one movie, 404 {"message": "Movie not found."}
	POST   /movies         201 created movie, 422 {"error": {...}}, 400 malformed JSON
	PATCH  /movies/{id}    200 merged movie, 422, 404 {"message": "Movie not found"}, 400
	DELETE /movies/{id}    200 {"message": "Movie deleted"}, 404 {"message": "Movie not found"}
	GET    /health/live    {"status": "ok"}
	GET    /health/ready   {"status": "ready", "movies": n, ...}
	GET    /metrics        Prometheus exposition
	GET    /ws             WebSocket change feed

Unknown routes answer 404 {"message": "Not found"}; a known path with the
wrong method answers 405 {"message": "Method not allowed"}. Bodies larger
than server.max_body_bytes answer 413.

# Middleware

Global middleware runs in this order:

 1. middleware.RequestID: X-Request-ID and logging context
 2. chi RealIP and Recoverer
 3. middleware.PrometheusMetrics: labelled by route pattern
 4. OriginGuard: 403 {"message": "Not allowed by CORS"} for an Origin
    outside the allow-list; requests without Origin pass
 5. go-chi/cors: CORS headers for allowed origins, preflight handling
 6. APISecurityHeaders
 7. BodyLimit

/movies responses are gzip-compressed for clients that accept it.

# Error Mapping

respondCatalogError is the single place catalog errors become responses:

  - *validation.MovieValidationError: 422 with the per-field messages
  - *validation.MalformedBodyError: 400 {"message": "Malformed JSON body"}
  - catalog.ErrMovieNotFound: 404 with the route's message
  - anything else: 500 {"message": "Internal server error"}, logged with the request ID
*/
package api
