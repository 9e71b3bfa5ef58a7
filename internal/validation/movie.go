// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/models"
)

// Validation modes, used as metric and log labels.
const (
	ModeFull    = "full"
	ModePartial = "partial"
)

// BodyField is the error key used when the payload as a whole is rejected.
const BodyField = "body"

// maxSafeInteger bounds integer fields to values a float64 represents exactly.
const maxSafeInteger = 1<<53 - 1

// MovieValidationError reports every rejected field of a movie payload.
// Fields maps the JSON field name to a single diagnostic message.
type MovieValidationError struct {
	Mode   string
	Fields map[string]string
}

// Error implements the error interface with a stable, field-sorted message.
func (e *MovieValidationError) Error() string {
	names := e.FieldNames()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e.Fields[name]
	}
	return "invalid movie: " + strings.Join(parts, "; ")
}

// FieldNames returns the rejected field names in sorted order.
func (e *MovieValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MalformedBodyError is returned when the payload is not syntactically valid JSON.
type MalformedBodyError struct {
	Err error
}

func (e *MalformedBodyError) Error() string {
	if e.Err == nil {
		return "malformed JSON body"
	}
	return fmt.Sprintf("malformed JSON body: %v", e.Err)
}

func (e *MalformedBodyError) Unwrap() error {
	return e.Err
}

// fieldKind is the JSON type a field must carry.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInteger
	kindNumber
	kindGenreList
)

// fieldRule is one row of the movie schema. Both validation modes share
// the same table; only the handling of absent fields differs.
type fieldRule struct {
	name     string
	label    string
	kind     fieldKind
	required bool
	tag      string
	messages map[string]string // overrides keyed by validator tag, "type" or "required"
}

var movieSchema = []fieldRule{
	{
		name:     "title",
		label:    "Movie title",
		kind:     kindString,
		required: true,
		tag:      "min=1",
		messages: map[string]string{
			"type":     "Movie title must be a string",
			"required": "Movie title is required",
			"min":      "Movie title must not be empty",
		},
	},
	{
		name:     "year",
		label:    "Movie year",
		kind:     kindInteger,
		required: true,
		tag:      "gte=1900,lte=2024",
	},
	{
		name:     "director",
		label:    "Movie director",
		kind:     kindString,
		required: true,
	},
	{
		name:     "duration",
		label:    "Movie duration",
		kind:     kindInteger,
		required: true,
		tag:      "gt=0",
	},
	{
		// The lower bound is explicit: a rate below zero is never accepted.
		name:  "rate",
		label: "Movie rate",
		kind:  kindNumber,
		tag:   "gte=0,lte=10",
	},
	{
		name:     "poster",
		label:    "Poster",
		kind:     kindString,
		required: true,
		tag:      "url",
		messages: map[string]string{
			"url": "Poster must be a valid URL",
		},
	},
	{
		name:     "genre",
		label:    "Movie genre",
		kind:     kindGenreList,
		required: true,
		tag:      "min=1,dive,oneof=" + strings.Join(models.GenreNames(), " "),
		messages: map[string]string{
			"required": "Movie genre is required",
			"min":      "Movie genre must contain at least one genre",
		},
	},
}

// ValidateFull checks a creation payload. Every field is required except
// rate, which defaults to models.DefaultRate. The returned Movie has no ID.
//
// The error is a *MovieValidationError for schema violations or a
// *MalformedBodyError when input is not valid JSON.
func ValidateFull(input []byte) (models.Movie, error) {
	values, err := checkMovie(input, ModeFull)
	if err != nil {
		return models.Movie{}, err
	}

	movie := models.Movie{
		Title:    values["title"].(string),
		Year:     values["year"].(int),
		Director: values["director"].(string),
		Duration: values["duration"].(int),
		Rate:     models.DefaultRate,
		Poster:   values["poster"].(string),
		Genre:    values["genre"].([]models.Genre),
	}
	if rate, ok := values["rate"]; ok {
		movie.Rate = rate.(float64)
	}
	return movie, nil
}

// ValidatePartial checks an update payload. No field is required; only
// fields present in input are checked and returned. An empty object, or an
// empty body, yields an empty PartialMovie.
func ValidatePartial(input []byte) (models.PartialMovie, error) {
	values, err := checkMovie(input, ModePartial)
	if err != nil {
		return models.PartialMovie{}, err
	}

	var partial models.PartialMovie
	for name, value := range values {
		switch name {
		case "title":
			v := value.(string)
			partial.Title = &v
		case "year":
			v := value.(int)
			partial.Year = &v
		case "director":
			v := value.(string)
			partial.Director = &v
		case "duration":
			v := value.(int)
			partial.Duration = &v
		case "rate":
			v := value.(float64)
			partial.Rate = &v
		case "poster":
			v := value.(string)
			partial.Poster = &v
		case "genre":
			partial.Genre = value.([]models.Genre)
		}
	}
	return partial, nil
}

// checkMovie decodes input and runs every rule of movieSchema against it.
// It returns the decoded values of the present fields keyed by JSON name.
// Fields outside the schema, including "id", are ignored.
func checkMovie(input []byte, mode string) (map[string]interface{}, error) {
	body := bytes.TrimSpace(input)
	if len(body) == 0 {
		body = []byte("{}")
	}

	if !json.Valid(body) {
		return nil, &MalformedBodyError{Err: errors.New("invalid JSON syntax")}
	}

	if body[0] != '{' {
		return nil, &MovieValidationError{
			Mode:   mode,
			Fields: map[string]string{BodyField: "Request body must be a JSON object"},
		}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &MalformedBodyError{Err: err}
	}

	values := make(map[string]interface{}, len(movieSchema))
	failures := make(map[string]string)

	for i := range movieSchema {
		rule := &movieSchema[i]

		data, present := raw[rule.name]
		if !present {
			if rule.required && mode == ModeFull {
				failures[rule.name] = rule.message("required")
			}
			continue
		}

		value, ok := rule.decode(data)
		if !ok {
			failures[rule.name] = rule.message("type")
			continue
		}

		if msg := rule.check(value); msg != "" {
			failures[rule.name] = msg
			continue
		}

		values[rule.name] = rule.normalize(value)
	}

	if len(failures) > 0 {
		return nil, &MovieValidationError{Mode: mode, Fields: failures}
	}
	return values, nil
}

// decode converts a raw JSON value into the Go type for the rule's kind.
// It reports false on any type mismatch, including null.
func (r *fieldRule) decode(data json.RawMessage) (interface{}, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, false
	}

	switch r.kind {
	case kindString:
		// Invalid UTF-8 would otherwise be stored as U+FFFD.
		if data[0] != '"' || !utf8.Valid(data) {
			return nil, false
		}
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, false
		}
		return s, true

	case kindInteger, kindNumber:
		if data[0] != '-' && (data[0] < '0' || data[0] > '9') {
			return nil, false
		}
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, false
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, false
		}
		if r.kind == kindInteger {
			if f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
				return nil, false
			}
			return int(f), true
		}
		if f == 0 {
			f = 0 // -0
		}
		return f, true

	case kindGenreList:
		if data[0] != '[' {
			return nil, false
		}
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, false
		}
		genres := make([]string, len(items))
		for i, item := range items {
			item = bytes.TrimSpace(item)
			if len(item) == 0 || item[0] != '"' || !utf8.Valid(item) {
				return nil, false
			}
			if err := json.Unmarshal(item, &genres[i]); err != nil {
				return nil, false
			}
		}
		return genres, true
	}

	return nil, false
}

// check evaluates the rule's validator tag and returns the first failure
// message, or "" when the value is acceptable.
func (r *fieldRule) check(value interface{}) string {
	if r.tag == "" {
		return ""
	}

	err := GetValidator().Var(value, r.tag)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Sprintf("%s is invalid", r.label)
	}

	fe := fieldErrs[0]
	if msg, ok := r.messages[fe.Tag()]; ok {
		return msg
	}
	return translateError(r.label, fe)
}

// normalize converts a checked value to its models representation.
func (r *fieldRule) normalize(value interface{}) interface{} {
	if r.kind != kindGenreList {
		return value
	}
	names := value.([]string)
	genres := make([]models.Genre, len(names))
	for i, name := range names {
		genres[i] = models.Genre(name)
	}
	return genres
}

// message returns the override for key, falling back to a generic message.
func (r *fieldRule) message(key string) string {
	if msg, ok := r.messages[key]; ok {
		return msg
	}

	switch key {
	case "required":
		return fmt.Sprintf("%s is required", r.label)
	case "type":
		switch r.kind {
		case kindString:
			return fmt.Sprintf("%s must be a string", r.label)
		case kindInteger:
			return fmt.Sprintf("%s must be an integer", r.label)
		case kindNumber:
			return fmt.Sprintf("%s must be a number", r.label)
		case kindGenreList:
			return fmt.Sprintf("%s must be an array of strings", r.label)
		}
	}
	return fmt.Sprintf("%s failed %s validation", r.label, key)
}
