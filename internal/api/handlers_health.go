// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK whenever the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// The catalog is loaded before the server starts, so a running server is ready.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	count := h.catalog.Len()
	respondJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "ready",
		Movies:  &count,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}
