// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package models defines the data structures shared across Marquee.

Key Components:

  - Movie: the catalog record. Every Movie held by the catalog satisfies the full schema.
  - PartialMovie: the subset of fields present in a partial update payload.
  - Genre: the closed genre enumeration.
  - MessageResponse, ValidationErrorResponse, HealthResponse: JSON response bodies.

Wire format:

	{
	  "id": "6a360a18-c645-4b47-9a7b-2a71babbf3e0",
	  "title": "Inception",
	  "year": 2010,
	  "director": "Christopher Nolan",
	  "duration": 148,
	  "rate": 8.8,
	  "poster": "https://m.media-amazon.com/images/inception.jpg",
	  "genre": ["Action", "Adventure", "Sci-Fi"]
	}

Models carry no validation logic; see internal/validation for the schema rules and
internal/catalog for the collection that owns the records.
*/
package models
