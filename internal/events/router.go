// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/tomtom215/marquee/internal/logging"
)

// Sink receives decoded changes. The WebSocket hub implements it.
type Sink interface {
	BroadcastChange(c Change)
}

// RouterConfig holds configuration for the Watermill Router.
type RouterConfig struct {
	// CloseTimeout is how long to wait for handlers to finish when closing.
	CloseTimeout time.Duration
}

// DefaultRouterConfig returns defaults for the Router.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CloseTimeout: 5 * time.Second,
	}
}

// Router wraps the Watermill Router with panic recovery and the handler
// that forwards changes to a Sink.
type Router struct {
	router *message.Router
	logger watermill.LoggerAdapter
}

// NewRouter creates a Router that forwards every change published on bus to sink.
func NewRouter(cfg RouterConfig, bus *Bus, sink Sink, logger watermill.LoggerAdapter) (*Router, error) {
	if bus == nil || sink == nil {
		return nil, fmt.Errorf("create event router: bus and sink are required")
	}
	if logger == nil {
		logger = watermill.NewSlogLogger(logging.NewSlogLogger())
	}
	if cfg.CloseTimeout <= 0 {
		cfg.CloseTimeout = DefaultRouterConfig().CloseTimeout
	}

	wmRouter, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	// Recoverer: Convert panics to errors
	wmRouter.AddMiddleware(middleware.Recoverer)

	wmRouter.AddConsumerHandler(
		"websocket-forwarder",
		bus.Topic(),
		bus.Subscriber(),
		ForwardTo(sink),
	)

	return &Router{router: wmRouter, logger: logger}, nil
}

// ForwardTo returns a handler that decodes each message and passes it to sink.
// Undecodable messages are logged and acknowledged so they are not redelivered.
func ForwardTo(sink Sink) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		change, err := UnmarshalChange(msg.Payload)
		if err != nil {
			logging.Warn().
				Err(err).
				Str("message_uuid", msg.UUID).
				Msg("dropping undecodable change event")
			return nil
		}

		logging.Debug().
			Str("type", string(change.Type)).
			Str("movie_id", change.MovieID).
			Str("correlation_id", msg.Metadata.Get(MetadataCorrelationID)).
			Msg("forwarding change event")

		sink.BroadcastChange(change)
		return nil
	}
}

// Run starts the router and blocks until ctx is canceled or Close is called.
func (r *Router) Run(ctx context.Context) error {
	return r.router.Run(ctx)
}

// Running returns a channel that closes when the router is running.
func (r *Router) Running() <-chan struct{} {
	return r.router.Running()
}

// Close gracefully stops the router.
func (r *Router) Close() error {
	return r.router.Close()
}
