// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "strings"

// Genre is one tag of the closed genre enumeration.
type Genre string

// Supported genres.
const (
	GenreAction    Genre = "Action"
	GenreAdventure Genre = "Adventure"
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreFantasy   Genre = "Fantasy"
	GenreHorror    Genre = "Horror"
	GenreThriller  Genre = "Thriller"
	GenreSciFi     Genre = "Sci-Fi"
	GenreCrime     Genre = "Crime"
)

// AllGenres lists every supported genre in declaration order.
var AllGenres = []Genre{
	GenreAction,
	GenreAdventure,
	GenreComedy,
	GenreDrama,
	GenreFantasy,
	GenreHorror,
	GenreThriller,
	GenreSciFi,
	GenreCrime,
}

// Matches reports whether g equals filter under Unicode case folding.
func (g Genre) Matches(filter string) bool {
	return strings.EqualFold(string(g), filter)
}

// GenreNames returns the enumeration as plain strings.
func GenreNames() []string {
	names := make([]string, len(AllGenres))
	for i, g := range AllGenres {
		names[i] = string(g)
	}
	return names
}
