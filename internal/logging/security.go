// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// SecurityEvent represents an access-control decision worth auditing.
type SecurityEvent struct {
	// Event is the type of event (e.g., "origin_rejected", "websocket_rejected").
	Event string
	// RequestID is the request identifier, when known.
	RequestID string
	// Origin is the Origin header presented by the client.
	Origin string
	// Method and Path identify the rejected request.
	Method string
	Path   string
	// IPAddress is the client's IP address.
	IPAddress string
	// UserAgent is the client's user agent (truncated).
	UserAgent string
	// Details contains additional details; values are sanitized.
	Details map[string]string
}

// SecurityLogger logs access-control decisions. Every client-supplied value
// is sanitized before it reaches the log.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a new security logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		logger: Logger().With().Str("component", "access").Logger(),
	}
}

// NewSecurityLoggerWithLogger creates a security logger with a custom zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "access").Logger(),
	}
}

// LogEvent logs a security event at warn level.
func (l *SecurityLogger) LogEvent(event *SecurityEvent) {
	e := l.logger.Warn().
		Str("event", event.Event)

	if event.RequestID != "" {
		e = e.Str("request_id", event.RequestID)
	}
	if event.Origin != "" {
		e = e.Str("origin", SanitizeLogValue(event.Origin))
	}
	if event.Method != "" {
		e = e.Str("method", event.Method)
	}
	if event.Path != "" {
		e = e.Str("path", SanitizeLogValue(event.Path))
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", truncateString(SanitizeLogValue(event.UserAgent), 100))
	}
	for k, v := range event.Details {
		e = e.Str(k, SanitizeLogValue(v))
	}

	e.Msg("request rejected")
}

// LogOriginRejected logs a request refused by the cross-origin allow-list.
func (l *SecurityLogger) LogOriginRejected(requestID, origin, method, path, ip, userAgent string) {
	l.LogEvent(&SecurityEvent{
		Event:     "origin_rejected",
		RequestID: requestID,
		Origin:    origin,
		Method:    method,
		Path:      path,
		IPAddress: ip,
		UserAgent: userAgent,
	})
}

// LogWebSocketRejected logs a change feed upgrade refused during the handshake.
func (l *SecurityLogger) LogWebSocketRejected(origin, ip, reason string) {
	l.LogEvent(&SecurityEvent{
		Event:     "websocket_rejected",
		Origin:    origin,
		IPAddress: ip,
		Details: map[string]string{
			"reason": reason,
		},
	})
}

// maxLogValueLength bounds client-supplied strings written to logs.
const maxLogValueLength = 256

// SanitizeLogValue replaces control characters (including CR and LF) with
// spaces and truncates the result, so client input cannot forge log lines.
func SanitizeLogValue(value string) string {
	if value == "" {
		return ""
	}
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, value)
	return truncateString(cleaned, maxLogValueLength)
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
