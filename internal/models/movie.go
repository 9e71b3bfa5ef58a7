// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// DefaultRate is the rate assigned when a creation payload omits it.
const DefaultRate = 5.0

// Movie is a single catalog record.
//
// ID is assigned by the catalog on creation and never changes afterwards.
// Genre is non-empty for every stored record.
type Movie struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Director string  `json:"director"`
	Duration int     `json:"duration"` // minutes
	Rate     float64 `json:"rate"`
	Poster   string  `json:"poster"`
	Genre    []Genre `json:"genre"`
}

// Clone returns a copy of m that shares no memory with it.
func (m Movie) Clone() Movie {
	if m.Genre != nil {
		genres := make([]Genre, len(m.Genre))
		copy(genres, m.Genre)
		m.Genre = genres
	}
	return m
}

// HasGenre reports whether any of the movie's genres equals filter,
// ignoring case. It is an exact tag comparison, not a substring match.
func (m Movie) HasGenre(filter string) bool {
	for _, g := range m.Genre {
		if g.Matches(filter) {
			return true
		}
	}
	return false
}

// Merge returns a copy of m with every field present in p replaced.
// ID is never touched. Fields are enumerated explicitly so that nothing
// outside the Movie schema can leak into a stored record.
func (m Movie) Merge(p PartialMovie) Movie {
	merged := m.Clone()
	if p.IsEmpty() {
		return merged
	}
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Year != nil {
		merged.Year = *p.Year
	}
	if p.Director != nil {
		merged.Director = *p.Director
	}
	if p.Duration != nil {
		merged.Duration = *p.Duration
	}
	if p.Rate != nil {
		merged.Rate = *p.Rate
	}
	if p.Poster != nil {
		merged.Poster = *p.Poster
	}
	if p.Genre != nil {
		genres := make([]Genre, len(p.Genre))
		copy(genres, p.Genre)
		merged.Genre = genres
	}
	return merged
}

// PartialMovie carries the fields present in a partial payload.
// A nil field was absent from the payload.
type PartialMovie struct {
	Title    *string  `json:"title,omitempty"`
	Year     *int     `json:"year,omitempty"`
	Director *string  `json:"director,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	Poster   *string  `json:"poster,omitempty"`
	Genre    []Genre  `json:"genre,omitempty"`
}

// IsEmpty reports whether no field is present.
func (p PartialMovie) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields returns the JSON names of the present fields in schema order.
func (p PartialMovie) Fields() []string {
	var fields []string
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Year != nil {
		fields = append(fields, "year")
	}
	if p.Director != nil {
		fields = append(fields, "director")
	}
	if p.Duration != nil {
		fields = append(fields, "duration")
	}
	if p.Rate != nil {
		fields = append(fields, "rate")
	}
	if p.Poster != nil {
		fields = append(fields, "poster")
	}
	if p.Genre != nil {
		fields = append(fields, "genre")
	}
	return fields
}
