// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/marquee/config.yaml",
	"/etc/marquee/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// PortEnvVar is the conventional platform port variable. It takes
// precedence over HTTP_PORT.
const PortEnvVar = "PORT"

// DefaultPort is the listen port when nothing else is configured.
const DefaultPort = 1234

// DefaultCORSOrigins is the default cross-origin allow-list.
var DefaultCORSOrigins = []string{
	"http://localhost:8080",
	"http://localhost:8081",
	"https://movies.com",
}

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	origins := make([]string, len(DefaultCORSOrigins))
	copy(origins, DefaultCORSOrigins)

	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20, // 1 MiB
			Environment:     "development",
		},
		Security: SecurityConfig{
			CORSOrigins: origins,
		},
		Catalog: CatalogConfig{
			SeedPath: "",
		},
		Events: EventsConfig{
			Enabled:      true,
			BufferSize:   256,
			CloseTimeout: 5 * time.Second,
		},
		WebSocket: WebSocketConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
//
// Precedence is ENV > File > Defaults. PORT beats HTTP_PORT.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if port := os.Getenv(PortEnvVar); port != "" {
		if err := k.Set("server.port", port); err != nil {
			return nil, fmt.Errorf("failed to set server.port from %s: %w", PortEnvVar, err)
		}
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML already yields slices.
// An explicitly empty value yields an empty allow-list.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"max_body_bytes":   "server.max_body_bytes",
	"environment":      "server.environment",

	// Security mappings
	"cors_origins": "security.cors_origins",

	// Catalog mappings
	"seed_path": "catalog.seed_path",

	// Event bus mappings
	"events_enabled":       "events.enabled",
	"events_buffer_size":   "events.buffer_size",
	"events_close_timeout": "events.close_timeout",

	// WebSocket mappings
	"websocket_enabled": "websocket.enabled",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CORS_ORIGINS -> security.cors_origins
//   - LOG_LEVEL -> logging.level
//
// Unmapped variables return "" and are skipped, so unrelated environment
// variables never pollute the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
