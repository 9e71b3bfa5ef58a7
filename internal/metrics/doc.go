// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus collectors for Marquee.

Collectors are registered on the default registry with promauto and exposed at
/metrics by promhttp:

	curl http://localhost:1234/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total requests (counter). Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram). Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

The endpoint label is the chi route pattern (for example /movies/{id}), never
the raw path, so label cardinality stays bounded.

Catalog Metrics:
  - catalog_movies: Movies currently held (gauge)
  - catalog_operations_total: Operations by outcome (counter). Labels: operation, result
  - catalog_validation_failures_total: Rejected fields (counter). Labels: mode, field

Change Feed Metrics:
  - events_published_total: Change events handed to the bus (counter). Labels: type, result
  - websocket_clients: Connected change feed clients (gauge)
  - websocket_messages_sent_total, websocket_errors_total

All functions are safe for concurrent use.
*/
package metrics
