// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// MessageResponse is the body used for informational and not-found responses.
//
// Example:
//
//	{"message": "Movie deleted"}
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the 422 body. Error maps each rejected field
// to a single diagnostic message.
//
// Example:
//
//	{
//	  "error": {
//	    "year": "Movie year must be less than or equal to 2024",
//	    "genre": "Movie genre is required"
//	  }
//	}
type ValidationErrorResponse struct {
	Error map[string]string `json:"error"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Movies  *int   `json:"movies,omitempty"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
