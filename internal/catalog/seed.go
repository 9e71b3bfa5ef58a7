// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

//go:embed seed/movies.json
var embeddedSeed []byte

// DefaultSeed returns the movies bundled with the binary.
func DefaultSeed() ([]models.Movie, error) {
	return LoadSeed(bytes.NewReader(embeddedSeed))
}

// LoadSeedFile reads a seed document from disk.
func LoadSeedFile(path string) ([]models.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	movies, err := LoadSeed(f)
	if err != nil {
		return nil, fmt.Errorf("load seed file %s: %w", path, err)
	}
	return movies, nil
}

// LoadSeed decodes a JSON array of movies. Every entry must carry a
// non-empty, unique id and satisfy the full movie schema; errors name the
// offending entry index.
func LoadSeed(r io.Reader) ([]models.Movie, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	movies := make([]models.Movie, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for i, raw := range entries {
		movie, err := validation.ValidateFull(raw)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}

		var ident struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &ident); err != nil {
			return nil, fmt.Errorf("seed entry %d: decode id: %w", i, err)
		}
		if ident.ID == "" {
			return nil, fmt.Errorf("seed entry %d: %w", i, ErrSeedMissingID)
		}
		if _, dup := seen[ident.ID]; dup {
			return nil, fmt.Errorf("seed entry %d: %w: %s", i, ErrSeedDuplicateID, ident.ID)
		}
		seen[ident.ID] = struct{}{}

		movie.ID = ident.ID
		movies = append(movies, movie)
	}

	return movies, nil
}
