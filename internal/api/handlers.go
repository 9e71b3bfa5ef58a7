// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	ws "github.com/tomtom215/marquee/internal/websocket"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, WebSocket upgrade (this file)
//   - handlers_helpers.go: JSON responses and error mapping
//   - handlers_movies.go: Movie collection endpoints
//   - handlers_health.go: Liveness and readiness probes
type Handler struct {
	catalog   *catalog.Catalog
	wsHub     *ws.Hub
	config    *config.Config
	version   string
	startTime time.Time

	// wsRegisterTimeout bounds how long an upgraded connection waits for
	// the hub to accept it.
	wsRegisterTimeout time.Duration
}

// NewHandler creates a new API handler.
//
// wsHub may be nil when the change feed is disabled; /ws then answers 503.
//
// Example:
//
//	handler := api.NewHandler(cat, hub, cfg, version)
//	router := api.NewRouter(handler, cfg)
//	srv := &http.Server{Addr: cfg.Server.Address(), Handler: router.SetupChi()}
func NewHandler(cat *catalog.Catalog, wsHub *ws.Hub, cfg *config.Config, version string) *Handler {
	return &Handler{
		catalog:   cat,
		wsHub:     wsHub,
		config:    cfg,
		version:   version,
		startTime: time.Now(),

		wsRegisterTimeout: 5 * time.Second,
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin applies the same allow-list as the HTTP origin guard.
// Clients that send no Origin header are accepted.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if originAllowed(h.config.Security.CORSOrigins, origin) {
		return true
	}

	logging.NewSecurityLogger().LogWebSocketRejected(origin, r.RemoteAddr, "origin not allowed")
	return false
}

// WebSocket upgrades the connection and registers the client with the hub.
// The feed is one-way: clients receive a message for every catalog change.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Ctx(r.Context()).Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondMessage(w, http.StatusServiceUnavailable, "WebSocket service unavailable")
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		logging.Ctx(r.Context()).Warn().
			Err(err).
			Msg("WebSocket upgrade error")
		return
	}

	// The hub may be stopped or restarting under the supervisor.
	client := ws.NewClient(h.wsHub, conn)
	timer := time.NewTimer(h.wsRegisterTimeout)
	defer timer.Stop()
	select {
	case h.wsHub.Register <- client:
	case <-r.Context().Done():
		h.dropUnregistered(r, conn)
		return
	case <-timer.C:
		h.dropUnregistered(r, conn)
		return
	}
	client.Start()
}

// dropUnregistered closes a connection the hub never accepted.
func (h *Handler) dropUnregistered(r *http.Request, conn *websocket.Conn) {
	logging.Ctx(r.Context()).Warn().Msg("WebSocket client dropped: hub not accepting registrations")
	if err := conn.Close(); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("WebSocket close error")
	}
}
