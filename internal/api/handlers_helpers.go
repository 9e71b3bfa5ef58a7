// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// Fixed response messages.
const (
	msgRoot             = "hola mundo"
	msgMovieNotFound    = "Movie not found"
	msgMovieNotFoundGet = "Movie not found."
	msgMovieDeleted     = "Movie deleted"
	msgMalformedBody    = "Malformed JSON body"
	msgBodyTooLarge     = "Request body too large"
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgOriginRejected   = "Not allowed by CORS"
	msgInternalError    = "Internal server error"
)

// respondJSON encodes v with go-json and writes it with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondMessage writes {"message": message}.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.MessageResponse{Message: message})
}

// respondCatalogError maps a catalog or validation error onto its HTTP
// response. notFound is the route-specific 404 message.
func respondCatalogError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var invalid *validation.MovieValidationError
	var malformed *validation.MalformedBodyError

	switch {
	case errors.As(err, &invalid):
		respondJSON(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{Error: invalid.Fields})
	case errors.As(err, &malformed):
		respondMessage(w, http.StatusBadRequest, msgMalformedBody)
	case errors.Is(err, catalog.ErrMovieNotFound):
		respondMessage(w, http.StatusNotFound, notFound)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Catalog operation failed")
		respondMessage(w, http.StatusInternalServerError, msgInternalError)
	}
}

// readBody reads the request body, which BodyLimit has already capped.
// It writes the error response itself and reports whether the caller may continue.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err == nil {
		return body, true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondMessage(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return nil, false
	}

	logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to read request body")
	respondMessage(w, http.StatusBadRequest, msgMalformedBody)
	return nil, false
}
