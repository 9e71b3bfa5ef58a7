// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation result labels.
const (
	ResultSuccess    = "success"
	ResultInvalid    = "invalid"
	ResultNotFound   = "not_found"
	ResultError      = "error"
	ResultMalformed  = "malformed"
	ResultExhausted  = "id_exhausted"
	ResultPublishErr = "publish_error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}, // in-memory handlers are fast
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Current number of movies held in the catalog",
		},
	)

	CatalogOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "Total number of catalog operations by outcome",
		},
		[]string{"operation", "result"}, // operation: list, get, create, update, delete
	)

	CatalogValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total number of rejected payload fields",
		},
		[]string{"mode", "field"},
	)

	// Change Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of movie change events handed to the event bus",
		},
		[]string{"type", "result"},
	)

	// WebSocket Metrics
	WSClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_clients",
			Help: "Current number of connected change feed clients",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCatalogOperation counts one catalog operation and its outcome.
func RecordCatalogOperation(operation, result string) {
	CatalogOperations.WithLabelValues(operation, result).Inc()
}

// RecordValidationFailure counts each rejected field of a payload.
func RecordValidationFailure(mode string, fields []string) {
	for _, field := range fields {
		CatalogValidationFailures.WithLabelValues(mode, field).Inc()
	}
}

// SetCatalogSize sets the catalog size gauge.
func SetCatalogSize(n int) {
	CatalogMovies.Set(float64(n))
}

// RecordEventPublished counts a change event publication attempt.
func RecordEventPublished(eventType string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultPublishErr
	}
	EventsPublished.WithLabelValues(eventType, result).Inc()
}
