// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/marquee/internal/metrics"
)

func newMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("{}"))
	})
	r.Post("/movies", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError) // ignored by net/http
	})
	return r
}

func TestPrometheusMetrics_LabelsByRoutePattern(t *testing.T) {
	router := newMetricsRouter()

	tests := []struct {
		method string
		path   string
		route  string
		status string
	}{
		{http.MethodGet, "/movies/abc", "/movies/{id}", "200"},
		{http.MethodGet, "/movies/missing", "/movies/{id}", "404"},
		{http.MethodPost, "/movies", "/movies", "201"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			counter := metrics.APIRequestsTotal.WithLabelValues(tt.method, tt.route, tt.status)
			before := testutil.ToFloat64(counter)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("api_requests_total{%s,%s,%s} delta = %v, want 1", tt.method, tt.route, tt.status, got)
			}
		})
	}
}

func TestPrometheusMetrics_RawPathNeverLabelled(t *testing.T) {
	router := newMetricsRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/xyz-123", nil))

	if n := testutil.CollectAndCount(metrics.APIRequestsTotal); n == 0 {
		t.Fatal("expected api_requests_total series")
	}
	if v := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/movies/xyz-123", "200")); v != 0 {
		t.Errorf("raw path series should not be incremented, got %v", v)
	}
}

func TestPrometheusMetrics_OutsideRouter(t *testing.T) {
	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("unmatched delta = %v, want 1", got)
	}
}

func TestPrometheusMetrics_ActiveRequests(t *testing.T) {
	var during float64
	before := testutil.ToFloat64(metrics.APIActiveRequests)

	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(metrics.APIActiveRequests)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if during != before+1 {
		t.Errorf("active requests during handler = %v, want %v", during, before+1)
	}
	if after := testutil.ToFloat64(metrics.APIActiveRequests); after != before {
		t.Errorf("active requests after handler = %v, want %v", after, before)
	}
}

func TestMetricsResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	_, _ = rw.Write([]byte("ok"))
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want 200 after an implicit header write", rw.statusCode)
	}
	if _, _, err := rw.Hijack(); err == nil {
		t.Error("Hijack on a recorder should fail")
	}
}
