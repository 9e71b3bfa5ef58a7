// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee serves an in-memory movie catalog over HTTP and streams every
change to WebSocket clients. The catalog lives only in process memory and
is rebuilt from seed data on each start.

# Startup

 1. Configuration: Koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Seed: catalog.seed_path, or the seed embedded in the binary
 4. Event bus: Watermill gochannel (if events.enabled)
 5. Catalog: seeded, publishing changes to the bus
 6. Change feed: WebSocket hub and event router (if websocket.enabled)
 7. HTTP server: chi router
 8. Supervisor tree: suture v4

Configuration or seed errors are fatal. After that every component runs
under the supervisor tree.

# Shutdown

SIGINT or SIGTERM cancels the root context. The HTTP server drains
in-flight requests within server.shutdown_timeout (default 10s), the hub
closes its clients, and the event bus is closed last.

# Running

	PORT=8080 LOG_FORMAT=console ./marquee

	curl localhost:8080/movies?genre=drama
*/
package main
