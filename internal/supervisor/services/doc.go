// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services provides suture.Service wrappers for Marquee components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve(ctx) error pattern and names itself through fmt.Stringer so
supervisor events identify the service.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server; ListenAndServe runs in a goroutine
  - Graceful shutdown on cancellation within a configurable timeout

WebSocket Hub (WebSocketHubService):
  - Wraps websocket.Hub.RunWithContext
  - Closes connected clients on shutdown; safe to restart

Event Router (EventRouterService):
  - Wraps events.Router, which forwards bus changes to the hub
  - Not restarted once it stops on its own (suture.ErrDoNotRestart)

# Return Values

Serve returns ctx.Err() on a requested shutdown. Any other error tells
suture the service failed; it is restarted with backoff unless the error
wraps suture.ErrDoNotRestart.

The wrappers depend on small interfaces (HTTPServer, ContextHub,
EventRouter) rather than concrete types, so tests use mocks.
*/
package services
