// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config provides centralized configuration management for Marquee.

Configuration is layered with Koanf v2. Each layer overrides the previous:

 1. Defaults from defaultConfig
 2. An optional YAML file (CONFIG_PATH, then config.yaml, config.yml,
    /etc/marquee/config.yaml, /etc/marquee/config.yml)
 3. Mapped environment variables
 4. PORT, which wins over HTTP_PORT

# Environment Variables

Server (ServerConfig):
  - PORT / HTTP_PORT: Listen port (default: 1234)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - MAX_BODY_BYTES: Request body cap (default: 1048576)
  - ENVIRONMENT: development, staging, production (default: development)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated origin allow-list
    (default: http://localhost:8080,http://localhost:8081,https://movies.com)

Catalog (CatalogConfig):
  - SEED_PATH: JSON seed file (default: embedded seed)

Events (EventsConfig, WebSocketConfig):
  - EVENTS_ENABLED: Publish change events (default: true)
  - EVENTS_BUFFER_SIZE: Bus channel buffer (default: 256)
  - EVENTS_CLOSE_TIMEOUT: Router close budget (default: 5s)
  - WEBSOCKET_ENABLED: Serve the /ws change feed (default: true)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

Unmapped environment variables are ignored.

# Validation

Load validates every section with go-playground/validator struct tags and
then applies cross-field rules. The WebSocket feed requires the event bus.
*/
package config
