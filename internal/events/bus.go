// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// Metadata keys set on every published message.
const (
	MetadataType          = "change_type"
	MetadataMovieID       = "movie_id"
	MetadataCorrelationID = "correlation_id"
)

// ErrBusClosed is returned when publishing after Close.
var ErrBusClosed = errors.New("event bus closed")

// BusConfig holds configuration for the in-process bus.
type BusConfig struct {
	// OutputChannelBuffer is the per-subscriber buffer size.
	OutputChannelBuffer int64
}

// DefaultBusConfig returns defaults suitable for a single process.
func DefaultBusConfig() BusConfig {
	return BusConfig{
		OutputChannelBuffer: 256,
	}
}

// Bus publishes catalog changes onto a Watermill gochannel pub/sub.
// Subscribers see changes in the order PublishChange was called.
// It is safe for concurrent use.
type Bus struct {
	pubsub *gochannel.GoChannel
	topic  string
	mu     sync.RWMutex
	closed bool
}

// NewBus creates a Bus. A nil logger falls back to the slog bridge of the
// application logger.
func NewBus(cfg BusConfig, logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NewSlogLogger(logging.NewSlogLogger())
	}
	if cfg.OutputChannelBuffer <= 0 {
		cfg.OutputChannelBuffer = DefaultBusConfig().OutputChannelBuffer
	}

	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: cfg.OutputChannelBuffer,
			// Publish returns only after every subscriber has acked, so
			// changes reach the router in publish order.
			BlockPublishUntilSubscriberAck: true,
		}, logger),
		topic: TopicMovieChanges,
	}
}

// PublishChange encodes c and publishes it on the changes topic.
func (b *Bus) PublishChange(ctx context.Context, c Change) error {
	err := b.publish(ctx, c)
	metrics.RecordEventPublished(string(c.Type), err)
	return err
}

func (b *Bus) publish(ctx context.Context, c Change) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("publish change: %w", err)
	}

	payload, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}

	msg := message.NewMessage(c.EventID, payload)
	msg.Metadata.Set(MetadataType, string(c.Type))
	msg.Metadata.Set(MetadataMovieID, c.MovieID)
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataCorrelationID, id)
	} else if id := logging.RequestIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataCorrelationID, id)
	}

	if err := b.pubsub.Publish(b.topic, msg); err != nil {
		return fmt.Errorf("publish change %s: %w", c.EventID, err)
	}
	return nil
}

// Subscriber exposes the underlying subscriber for router handlers.
func (b *Bus) Subscriber() message.Subscriber {
	return b.pubsub
}

// Topic returns the topic changes are published on.
func (b *Bus) Topic() string {
	return b.topic
}

// Close stops the bus. Subsequent publishes return ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	return b.pubsub.Close()
}
