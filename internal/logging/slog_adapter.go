// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// SlogHandler is a slog.Handler that writes through zerolog. sutureslog and
// Watermill's slog adapter both log through it, so supervisor and event bus
// output shares the service's format and level.
type SlogHandler struct {
	logger zerolog.Logger
	attrs  []slog.Attr
	prefix string
}

// NewSlogHandler wraps the given zerolog logger.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewSlogHandler(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// NewSlogLogger returns a slog.Logger backed by the global logger as it is
// configured at call time.
//
//	wmLogger := watermill.NewSlogLogger(logging.NewSlogLogger())
func NewSlogLogger() *slog.Logger {
	return slog.New(NewSlogHandler(Logger()))
}

// Enabled implements slog.Handler.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	zl := toZerologLevel(level)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(toZerologLevel(record.Level))
	if event == nil {
		return nil
	}
	for _, a := range h.attrs {
		addAttr(event, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		addAttr(event, h.prefix, a)
		return true
	})
	event.Msg(record.Message)
	return nil
}

// WithAttrs implements slog.Handler. Attributes are qualified with the
// groups open at the time they were added.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &SlogHandler{
		logger: h.logger,
		prefix: h.prefix,
		attrs:  make([]slog.Attr, 0, len(h.attrs)+len(attrs)),
	}
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		next.attrs = append(next.attrs, a)
	}
	return next
}

// WithGroup implements slog.Handler.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{
		logger: h.logger,
		attrs:  h.attrs,
		prefix: h.prefix + name + ".",
	}
}

func addAttr(event *zerolog.Event, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := prefix + a.Key

	switch a.Value.Kind() {
	case slog.KindString:
		event.Str(key, a.Value.String())
	case slog.KindInt64:
		event.Int64(key, a.Value.Int64())
	case slog.KindUint64:
		event.Uint64(key, a.Value.Uint64())
	case slog.KindFloat64:
		event.Float64(key, a.Value.Float64())
	case slog.KindBool:
		event.Bool(key, a.Value.Bool())
	case slog.KindDuration:
		event.Dur(key, a.Value.Duration())
	case slog.KindTime:
		event.Time(key, a.Value.Time())
	case slog.KindGroup:
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = key + "."
		}
		for _, ga := range a.Value.Group() {
			addAttr(event, groupPrefix, ga)
		}
	default:
		if err, ok := a.Value.Any().(error); ok {
			event.AnErr(key, err)
			return
		}
		event.Interface(key, a.Value.Any())
	}
}

func toZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelDebug:
		return zerolog.TraceLevel
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
