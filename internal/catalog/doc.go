// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package catalog owns the in-memory movie collection.
//
// A Catalog is initialized once from a seed document (embedded in the binary
// or read from catalog.seed_path) and is never persisted back. Create and
// Update run request bodies through internal/validation before touching the
// collection; Get, Update and Delete report ErrMovieNotFound for unknown ids.
//
// After a successful mutation the Catalog hands an events.Change to its
// Publisher outside the lock.
package catalog
