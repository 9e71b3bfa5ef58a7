// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor provides process supervision for Marquee using suture v4.

# Overview

Long-running components run as suture services in a two-layer tree:

	RootSupervisor ("marquee")
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocketHubService (if websocket.enabled)
	│   └── EventRouterService (if websocket.enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures independently, so a crashing change feed is
restarted without disturbing the HTTP API.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(services.NewEventRouterService(router))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := tree.ServeBackground(ctx)

# Configuration

TreeConfig mirrors suture.Spec. Zero fields take the defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

Supervisor events (service panics, failures, backoff) are logged through
sutureslog onto the slog bridge of the zerolog logger.

# See Also

  - internal/supervisor/services: service wrappers
  - https://pkg.go.dev/github.com/thejerf/suture/v4
*/
package supervisor
