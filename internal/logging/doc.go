// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package logging provides centralized zerolog-based structured logging for Marquee.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("port", 1234).Msg("Server starting")
//	logging.Error().Err(err).Str("movie_id", id).Msg("Publish failed")
//
//	// Request-scoped logging picks up request_id and correlation_id
//	logging.Ctx(ctx).Info().Msg("Movie created")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// # slog Adapter
//
// NewSlogLogger bridges to log/slog for libraries that require it. Suture's
// event hook (sutureslog) and the Watermill logger adapter both use it:
//
//	wmLogger := watermill.NewSlogLogger(logging.NewSlogLogger())
//
// # Access Logging
//
// SecurityLogger records rejected cross-origin requests and WebSocket
// handshakes. Client-supplied values pass through SanitizeLogValue so they
// cannot inject forged log lines.
//
// # Output Formats
//
// JSON Format (Production):
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","message":"Server starting","port":1234}
//
// Console Format (Development):
//
//	10:30:00 INF Server starting port=1234
//
// All exported functions are safe for concurrent use.
package logging
