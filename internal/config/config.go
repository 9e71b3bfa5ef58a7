// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	addr := cfg.Server.Address()
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Events    EventsConfig    `koanf:"events"`
	WebSocket WebSocketConfig `koanf:"websocket"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes" validate:"min=1"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// Address returns the host:port listen address.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds the cross-origin policy.
//
// Environment Variables:
//   - CORS_ORIGINS: comma-separated allow-list of exact origins
type SecurityConfig struct {
	// CORSOrigins lists the origins allowed to call the API. Requests
	// carrying any other Origin header are rejected with 403. Requests
	// without an Origin header are always allowed.
	CORSOrigins []string `koanf:"cors_origins" validate:"dive,url"`
}

// CatalogConfig holds catalog bootstrap settings.
type CatalogConfig struct {
	// SeedPath points at a JSON array of movies. Empty means the seed
	// embedded in the binary.
	SeedPath string `koanf:"seed_path"`
}

// EventsConfig holds the in-process change event bus settings.
type EventsConfig struct {
	Enabled      bool          `koanf:"enabled"`
	BufferSize   int64         `koanf:"buffer_size" validate:"min=1"`
	CloseTimeout time.Duration `koanf:"close_timeout" validate:"gt=0"`
}

// WebSocketConfig holds the /ws change feed settings.
type WebSocketConfig struct {
	Enabled bool `koanf:"enabled"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from all sources and validates it.
// See LoadWithKoanf for the layering.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
