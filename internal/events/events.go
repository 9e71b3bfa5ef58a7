// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/marquee/internal/models"
)

// TopicMovieChanges is the bus topic carrying every Change.
const TopicMovieChanges = "movies.changes"

// Type identifies the mutation that produced a Change.
type Type string

const (
	TypeCreated Type = "movie_created"
	TypeUpdated Type = "movie_updated"
	TypeDeleted Type = "movie_deleted"
)

// Valid reports whether t is a known change type.
func (t Type) Valid() bool {
	switch t {
	case TypeCreated, TypeUpdated, TypeDeleted:
		return true
	}
	return false
}

// Change describes one successful catalog mutation.
// Movie holds the record after the mutation; it is nil for deletions.
type Change struct {
	EventID    string        `json:"event_id"`
	Type       Type          `json:"type"`
	MovieID    string        `json:"movie_id"`
	Movie      *models.Movie `json:"movie,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewChange builds a Change with a fresh event ID.
func NewChange(t Type, movieID string, movie *models.Movie) Change {
	c := Change{
		EventID:    uuid.NewString(),
		Type:       t,
		MovieID:    movieID,
		OccurredAt: time.Now().UTC(),
	}
	if movie != nil {
		clone := movie.Clone()
		c.Movie = &clone
	}
	return c
}

// Validate checks the fields every Change must carry.
func (c *Change) Validate() error {
	if c.EventID == "" {
		return errors.New("event_id is required")
	}
	if !c.Type.Valid() {
		return fmt.Errorf("unknown change type %q", c.Type)
	}
	if c.MovieID == "" {
		return errors.New("movie_id is required")
	}
	if c.Type != TypeDeleted && c.Movie == nil {
		return fmt.Errorf("%s change requires a movie", c.Type)
	}
	return nil
}

// Marshal encodes c as JSON.
func (c *Change) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// UnmarshalChange decodes and validates a Change.
func UnmarshalChange(data []byte) (Change, error) {
	var c Change
	if err := json.Unmarshal(data, &c); err != nil {
		return Change{}, fmt.Errorf("decode change: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Change{}, fmt.Errorf("invalid change: %w", err)
	}
	return c, nil
}
