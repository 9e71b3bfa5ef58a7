// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import "errors"

var (
	// ErrMovieNotFound is returned when no movie has the requested id.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrIDExhausted is returned when the id generator keeps producing ids
	// that are already in use.
	ErrIDExhausted = errors.New("could not generate a unique movie id")

	// ErrSeedMissingID is returned for a seed entry without an id.
	ErrSeedMissingID = errors.New("seed entry has no id")

	// ErrSeedDuplicateID is returned when two seed entries share an id.
	ErrSeedDuplicateID = errors.New("duplicate seed id")
)
