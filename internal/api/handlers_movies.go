// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/models"
)

// Root answers GET / with a greeting.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, msgRoot)
}

// ListMovies returns every movie in catalog order. The optional genre query
// parameter keeps movies carrying that genre, compared case-insensitively.
// An unknown genre yields an empty array.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies := h.catalog.List(r.URL.Query().Get("genre"))
	if movies == nil {
		movies = []models.Movie{}
	}
	respondJSON(w, http.StatusOK, movies)
}

// GetMovie returns one movie by id.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondCatalogError(w, r, err, msgMovieNotFoundGet)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

// CreateMovie validates the body as a complete movie and stores it under a
// freshly generated id.
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	movie, err := h.catalog.Create(r.Context(), body)
	if err != nil {
		respondCatalogError(w, r, err, msgMovieNotFound)
		return
	}
	respondJSON(w, http.StatusCreated, movie)
}

// UpdateMovie merges the fields present in the body onto an existing movie.
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	movie, err := h.catalog.Update(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		respondCatalogError(w, r, err, msgMovieNotFound)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

// DeleteMovie removes a movie.
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondCatalogError(w, r, err, msgMovieNotFound)
		return
	}
	respondMessage(w, http.StatusOK, msgMovieDeleted)
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusNotFound, msgNotFound)
}

// MethodNotAllowed answers requests whose path matched with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
