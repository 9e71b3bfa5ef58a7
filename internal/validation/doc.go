// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation checks untyped JSON payloads against the movie schema
// and validates tagged structs using go-playground/validator v10.
//
// # Movie Payloads
//
// ValidateFull and ValidatePartial share one declarative table of field
// rules (movieSchema). Each rule names the JSON field, the JSON type it must
// carry and a validator tag for range and format checks:
//
//	title     string   required  min=1
//	year      integer  required  gte=1900,lte=2024
//	director  string   required
//	duration  integer  required  gt=0
//	rate      number   optional  gte=0,lte=10 (default 5)
//	poster    string   required  url
//	genre     []Genre  required  min=1,dive,oneof=Action ... Crime
//
// ValidateFull requires every field except rate. ValidatePartial requires
// nothing and returns only the fields present in the payload. Both report
// every rejected field at once:
//
//	movie, err := validation.ValidateFull(body)
//	var verr *validation.MovieValidationError
//	if errors.As(err, &verr) {
//	    // verr.Fields: {"year": "Movie year must be greater than or equal to 1900"}
//	}
//
// Type rules are strict. null is never accepted, integers must have no
// fractional part, and a payload that is not a JSON object is rejected with
// a single "body" entry. Syntactically invalid JSON is a *MalformedBodyError.
// Unknown fields, including "id", are ignored.
//
// # Struct Validation
//
// GetValidator returns the thread-safe singleton used by both paths.
// ValidateStruct validates tagged structs such as configuration sections and
// translates failures into readable messages:
//
//	if verr := validation.ValidateStruct(&cfg.Server); verr != nil {
//	    return fmt.Errorf("server: %w", verr)
//	}
package validation
