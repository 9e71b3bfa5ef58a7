// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/tomtom215/marquee/internal/validation"
)

// ErrWebSocketRequiresEvents is returned when the change feed is enabled
// without the event bus that feeds it.
var ErrWebSocketRequiresEvents = errors.New("websocket.enabled requires events.enabled")

// Validate checks struct tag constraints on every section, then the
// cross-field rules tags cannot express.
func (c *Config) Validate() error {
	sections := []struct {
		name  string
		value interface{}
	}{
		{"server", &c.Server},
		{"security", &c.Security},
		{"events", &c.Events},
		{"logging", &c.Logging},
	}
	for _, s := range sections {
		if verr := validation.ValidateStruct(s.value); verr != nil {
			return fmt.Errorf("invalid %s config: %w", s.name, verr)
		}
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	if c.WebSocket.Enabled && !c.Events.Enabled {
		return ErrWebSocketRequiresEvents
	}

	return nil
}

// validateCORS requires each origin to be a bare scheme://host[:port].
// Origin headers never carry a path, so an entry with one could never match.
func (c *Config) validateCORS() error {
	for _, origin := range c.Security.CORSOrigins {
		u, err := url.Parse(origin)
		if err != nil {
			return fmt.Errorf("invalid CORS origin %q: %w", origin, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("CORS origin %q: scheme must be http or https", origin)
		}
		if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
			return fmt.Errorf("CORS origin %q must not contain a path, query or fragment", origin)
		}
	}
	return nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// LogFormat returns the configured log format. Production always logs JSON.
func (c *Config) LogFormat() string {
	if c.IsProduction() {
		return "json"
	}
	return c.Logging.Format
}
