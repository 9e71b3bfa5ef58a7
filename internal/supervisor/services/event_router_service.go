// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"
)

// EventRouter is satisfied by *events.Router.
type EventRouter interface {
	Run(ctx context.Context) error
}

// EventRouterService runs the change event router under a supervisor.
//
// A Watermill router cannot be started twice, so when Run returns while
// the context is still live the service asks suture not to restart it.
// Changes published after that point are dropped by the bus; the HTTP API
// keeps working.
//
// Example usage:
//
//	router, err := events.NewRouter(events.DefaultRouterConfig(), bus, hub, nil)
//	tree.AddMessagingService(services.NewEventRouterService(router))
type EventRouterService struct {
	router EventRouter
	name   string
}

// NewEventRouterService creates a new event router service wrapper.
func NewEventRouterService(router EventRouter) *EventRouterService {
	return &EventRouterService{
		router: router,
		name:   "event-router",
	}
}

// Serve implements suture.Service.
func (s *EventRouterService) Serve(ctx context.Context) error {
	err := s.router.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("event router failed: %w: %w", err, suture.ErrDoNotRestart)
	}
	return fmt.Errorf("event router stopped: %w", suture.ErrDoNotRestart)
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *EventRouterService) String() string {
	return s.name
}
