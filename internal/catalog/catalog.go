// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/tomtom215/marquee/internal/events"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// Operation names used as metric labels.
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// maxIDAttempts bounds how many ids Create draws before giving up.
const maxIDAttempts = 3

// Publisher receives a Change after every successful mutation.
// *events.Bus implements it.
type Publisher interface {
	PublishChange(ctx context.Context, c events.Change) error
}

// IDGenerator returns a fresh movie id.
type IDGenerator func() (string, error)

// NewRandomID returns a random (version 4) UUID string.
func NewRandomID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithPublisher sets the change publisher.
func WithPublisher(p Publisher) Option {
	return func(c *Catalog) {
		c.publisher = p
	}
}

// WithIDGenerator replaces the default random UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Catalog) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// Catalog is the ordered, in-memory movie collection.
//
// Reads take the read lock and copy records out, so callers always see a
// consistent snapshot. Create, Update and Delete take the write lock and are
// mutually exclusive. Every operation either fully succeeds or leaves the
// collection untouched.
type Catalog struct {
	mu     sync.RWMutex
	movies []models.Movie
	// pubMu is taken before mu is released after a mutation and held until
	// the change is published, so changes are published in applied order.
	pubMu     sync.Mutex
	newID     IDGenerator
	publisher Publisher
}

// New returns an empty Catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		newID: NewRandomID,
	}
	for _, opt := range opts {
		opt(c)
	}
	metrics.SetCatalogSize(0)
	return c
}

// NewFromSeed returns a Catalog holding seed in order. Seed records are
// expected to come from LoadSeed; ids must be present and unique.
func NewFromSeed(seed []models.Movie, opts ...Option) (*Catalog, error) {
	c := New(opts...)

	seen := make(map[string]struct{}, len(seed))
	movies := make([]models.Movie, 0, len(seed))
	for i := range seed {
		id := seed[i].ID
		if id == "" {
			return nil, fmt.Errorf("seed entry %d: %w", i, ErrSeedMissingID)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("seed entry %d: %w: %s", i, ErrSeedDuplicateID, id)
		}
		seen[id] = struct{}{}
		movies = append(movies, seed[i].Clone())
	}

	c.movies = movies
	metrics.SetCatalogSize(len(movies))
	return c, nil
}

// List returns every movie in collection order. When genre is non-empty
// only movies carrying a genre tag equal to it under case folding are
// returned.
func (c *Catalog) List(genre string) []models.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]models.Movie, 0, len(c.movies))
	for i := range c.movies {
		if genre == "" || c.movies[i].HasGenre(genre) {
			result = append(result, c.movies[i].Clone())
		}
	}

	metrics.RecordCatalogOperation(OpList, metrics.ResultSuccess)
	return result
}

// Get returns the movie with the given id, or ErrMovieNotFound.
func (c *Catalog) Get(id string) (models.Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		metrics.RecordCatalogOperation(OpGet, metrics.ResultNotFound)
		return models.Movie{}, ErrMovieNotFound
	}

	metrics.RecordCatalogOperation(OpGet, metrics.ResultSuccess)
	return c.movies[idx].Clone(), nil
}

// Create validates body as a complete movie, assigns a fresh id and
// appends the record.
func (c *Catalog) Create(ctx context.Context, body []byte) (models.Movie, error) {
	movie, err := validation.ValidateFull(body)
	if err != nil {
		recordRejection(OpCreate, err)
		return models.Movie{}, err
	}

	c.mu.Lock()
	id, err := c.uniqueID()
	if err != nil {
		c.mu.Unlock()
		if errors.Is(err, ErrIDExhausted) {
			metrics.RecordCatalogOperation(OpCreate, metrics.ResultExhausted)
		} else {
			metrics.RecordCatalogOperation(OpCreate, metrics.ResultError)
		}
		return models.Movie{}, err
	}
	movie.ID = id
	c.movies = append(c.movies, movie)
	size := len(c.movies)
	created := movie.Clone()
	c.pubMu.Lock()
	c.mu.Unlock()

	metrics.SetCatalogSize(size)
	metrics.RecordCatalogOperation(OpCreate, metrics.ResultSuccess)
	logging.Ctx(ctx).Debug().Str("movie_id", id).Msg("movie created")

	c.publish(ctx, events.NewChange(events.TypeCreated, id, &created))
	return created, nil
}

// Update validates body as a partial movie and merges the present fields
// onto the stored record, keeping its position. Validation runs before the
// lookup, so an invalid body is reported even when id does not exist.
func (c *Catalog) Update(ctx context.Context, id string, body []byte) (models.Movie, error) {
	partial, err := validation.ValidatePartial(body)
	if err != nil {
		recordRejection(OpUpdate, err)
		return models.Movie{}, err
	}

	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		metrics.RecordCatalogOperation(OpUpdate, metrics.ResultNotFound)
		return models.Movie{}, ErrMovieNotFound
	}
	merged := c.movies[idx].Merge(partial)
	c.movies[idx] = merged
	updated := merged.Clone()
	c.pubMu.Lock()
	c.mu.Unlock()

	metrics.RecordCatalogOperation(OpUpdate, metrics.ResultSuccess)
	logging.Ctx(ctx).Debug().
		Str("movie_id", id).
		Strs("fields", partial.Fields()).
		Msg("movie updated")

	c.publish(ctx, events.NewChange(events.TypeUpdated, id, &updated))
	return updated, nil
}

// Delete removes the movie with the given id, preserving the order of the
// remaining records.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		metrics.RecordCatalogOperation(OpDelete, metrics.ResultNotFound)
		return ErrMovieNotFound
	}

	remaining := make([]models.Movie, 0, len(c.movies)-1)
	remaining = append(remaining, c.movies[:idx]...)
	remaining = append(remaining, c.movies[idx+1:]...)
	c.movies = remaining
	size := len(c.movies)
	c.pubMu.Lock()
	c.mu.Unlock()

	metrics.SetCatalogSize(size)
	metrics.RecordCatalogOperation(OpDelete, metrics.ResultSuccess)
	logging.Ctx(ctx).Debug().Str("movie_id", id).Msg("movie deleted")

	c.publish(ctx, events.NewChange(events.TypeDeleted, id, nil))
	return nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.movies)
}

// indexOf returns the position of id, or -1. Callers hold the lock.
func (c *Catalog) indexOf(id string) int {
	for i := range c.movies {
		if c.movies[i].ID == id {
			return i
		}
	}
	return -1
}

// uniqueID draws ids until one is unused. Callers hold the write lock.
func (c *Catalog) uniqueID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := c.newID()
		if err != nil {
			return "", fmt.Errorf("generate movie id: %w", err)
		}
		if id != "" && c.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

// publish hands change to the publisher and releases pubMu, which the
// caller acquired before dropping the write lock. Failures are logged and
// never returned: the mutation has already happened.
func (c *Catalog) publish(ctx context.Context, change events.Change) {
	defer c.pubMu.Unlock()
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishChange(ctx, change); err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("type", string(change.Type)).
			Str("movie_id", change.MovieID).
			Msg("failed to publish movie change")
	}
}

// recordRejection counts a validation or decoding failure.
func recordRejection(op string, err error) {
	var verr *validation.MovieValidationError
	if errors.As(err, &verr) {
		metrics.RecordValidationFailure(verr.Mode, verr.FieldNames())
		metrics.RecordCatalogOperation(op, metrics.ResultInvalid)
		return
	}
	metrics.RecordCatalogOperation(op, metrics.ResultMalformed)
}
