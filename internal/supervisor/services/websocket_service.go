// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
)

// ContextHub is satisfied by *websocket.Hub.
// Depending on the interface keeps this package free of the websocket import.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// WebSocketHubService runs the change feed hub under a supervisor.
// On cancellation the hub closes every client before returning.
//
// Example usage:
//
//	hub := websocket.NewHub()
//	tree.AddMessagingService(services.NewWebSocketHubService(hub))
type WebSocketHubService struct {
	hub  ContextHub
	name string
}

// NewWebSocketHubService creates a new WebSocket hub service wrapper.
func NewWebSocketHubService(hub ContextHub) *WebSocketHubService {
	return &WebSocketHubService{
		hub:  hub,
		name: "websocket-hub",
	}
}

// Serve implements suture.Service by delegating to hub.RunWithContext.
// The hub keeps no state across runs, so suture may restart it freely.
func (w *WebSocketHubService) Serve(ctx context.Context) error {
	return w.hub.RunWithContext(ctx)
}

// String implements fmt.Stringer; suture uses it in log messages.
func (w *WebSocketHubService) String() string {
	return w.name
}
