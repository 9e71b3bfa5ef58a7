// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/tomtom215/marquee/internal/models"
)

const inceptionJSON = `{
	"title": "Inception",
	"year": 2010,
	"director": "Nolan",
	"duration": 148,
	"poster": "https://x.com/p.jpg",
	"genre": ["Action", "Sci-Fi"]
}`

// withField returns inceptionJSON with one field replaced by raw JSON, or
// removed when raw is empty.
func withField(t *testing.T, field, raw string) []byte {
	t.Helper()
	fields := map[string]string{
		"title":    `"Inception"`,
		"year":     `2010`,
		"director": `"Nolan"`,
		"duration": `148`,
		"poster":   `"https://x.com/p.jpg"`,
		"genre":    `["Action","Sci-Fi"]`,
	}
	if _, ok := fields[field]; !ok && raw == "" {
		t.Fatalf("unknown field %q", field)
	}
	if raw == "" {
		delete(fields, field)
	} else {
		fields[field] = raw
	}

	parts := make([]string, 0, len(fields))
	for _, name := range []string{"title", "year", "director", "duration", "rate", "poster", "genre"} {
		if v, ok := fields[name]; ok {
			parts = append(parts, `"`+name+`":`+v)
		}
	}
	return []byte("{" + strings.Join(parts, ",") + "}")
}

func asValidationError(t *testing.T, err error) *MovieValidationError {
	t.Helper()
	var verr *MovieValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *MovieValidationError, got %T (%v)", err, err)
	}
	return verr
}

// ===================================================================================================
// ValidateFull Tests
// ===================================================================================================

func TestValidateFull_Valid(t *testing.T) {
	movie, err := ValidateFull([]byte(inceptionJSON))
	if err != nil {
		t.Fatalf("ValidateFull() unexpected error: %v", err)
	}

	if movie.ID != "" {
		t.Errorf("ID = %q, validation must not assign ids", movie.ID)
	}
	if movie.Title != "Inception" || movie.Year != 2010 || movie.Director != "Nolan" || movie.Duration != 148 {
		t.Errorf("unexpected scalar fields: %+v", movie)
	}
	if movie.Rate != models.DefaultRate {
		t.Errorf("Rate = %v, want default %v", movie.Rate, models.DefaultRate)
	}
	if movie.Poster != "https://x.com/p.jpg" {
		t.Errorf("Poster = %q", movie.Poster)
	}
	if len(movie.Genre) != 2 || movie.Genre[0] != models.GenreAction || movie.Genre[1] != models.GenreSciFi {
		t.Errorf("Genre = %v, want [Action Sci-Fi]", movie.Genre)
	}
}

func TestValidateFull_RateBounds(t *testing.T) {
	// The lower bound of rate is an explicit 0, inclusive.
	tests := []struct {
		name  string
		rate  string
		valid bool
		want  float64
	}{
		{"zero", "0", true, 0},
		{"fractional", "7.5", true, 7.5},
		{"ten", "10", true, 10},
		{"below zero", "-0.1", false, 0},
		{"above ten", "10.5", false, 0},
		{"string", `"9"`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movie, err := ValidateFull(withField(t, "rate", tt.rate))
			if !tt.valid {
				verr := asValidationError(t, err)
				if _, ok := verr.Fields["rate"]; !ok {
					t.Errorf("expected rate error, got %v", verr.Fields)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if movie.Rate != tt.want {
				t.Errorf("Rate = %v, want %v", movie.Rate, tt.want)
			}
		})
	}
}

func TestValidateFull_NegativeZeroRateIsStoredAsZero(t *testing.T) {
	movie, err := ValidateFull(withField(t, "rate", "-0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.Rate != 0 || math.Signbit(movie.Rate) {
		t.Errorf("Rate = %v (signbit %v), want +0", movie.Rate, math.Signbit(movie.Rate))
	}

	partial, err := ValidatePartial([]byte(`{"rate": -0.0}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if partial.Rate == nil || math.Signbit(*partial.Rate) {
		t.Errorf("partial Rate = %v, want +0", partial.Rate)
	}
}

func TestValidate_RejectsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		body  []byte
		field string
		want  string
	}{
		{"title", []byte("{\"title\": \"\xff\"}"), "title", "Movie title must be a string"},
		{"director", []byte("{\"director\": \"No\xc3lan\"}"), "director", "Movie director must be a string"},
		{"genre entry", []byte("{\"genre\": [\"Action\", \"\xfe\"]}"), "genre", "Movie genre must be an array of strings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidatePartial(tt.body)
			verr := asValidationError(t, err)
			if got := verr.Fields[tt.field]; got != tt.want {
				t.Errorf("%s message = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestValidateFull_MissingFields(t *testing.T) {
	tests := []struct {
		field   string
		message string
	}{
		{"title", "Movie title is required"},
		{"year", "Movie year is required"},
		{"director", "Movie director is required"},
		{"duration", "Movie duration is required"},
		{"poster", "Poster is required"},
		{"genre", "Movie genre is required"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			_, err := ValidateFull(withField(t, tt.field, ""))
			verr := asValidationError(t, err)

			if len(verr.Fields) != 1 {
				t.Errorf("expected exactly one failure, got %v", verr.Fields)
			}
			if got := verr.Fields[tt.field]; got != tt.message {
				t.Errorf("Fields[%q] = %q, want %q", tt.field, got, tt.message)
			}
			if verr.Mode != ModeFull {
				t.Errorf("Mode = %q, want %q", verr.Mode, ModeFull)
			}
		})
	}
}

func TestValidateFull_InvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		raw     string
		message string
	}{
		{"year below range", "year", "1899", "Movie year must be greater than or equal to 1900"},
		{"year above range", "year", "2025", "Movie year must be less than or equal to 2024"},
		{"year fractional", "year", "2010.5", "Movie year must be an integer"},
		{"year as string", "year", `"2010"`, "Movie year must be an integer"},
		{"year null", "year", "null", "Movie year must be an integer"},
		{"title number", "title", "42", "Movie title must be a string"},
		{"title empty", "title", `""`, "Movie title must not be empty"},
		{"director bool", "director", "true", "Movie director must be a string"},
		{"duration zero", "duration", "0", "Movie duration must be greater than 0"},
		{"duration negative", "duration", "-5", "Movie duration must be greater than 0"},
		{"poster not url", "poster", `"not a url"`, "Poster must be a valid URL"},
		{"poster relative", "poster", `"/images/p.jpg"`, "Poster must be a valid URL"},
		{"genre empty", "genre", "[]", "Movie genre must contain at least one genre"},
		{"genre not array", "genre", `"Action"`, "Movie genre must be an array of strings"},
		{"genre non-string entry", "genre", `["Action", 3]`, "Movie genre must be an array of strings"},
		{"genre unknown", "genre", `["Action","Musical"]`, "Movie genre must be one of: Action, Adventure, Comedy, Drama, Fantasy, Horror, Thriller, Sci-Fi, Crime"},
		{"genre wrong case", "genre", `["comedy"]`, "Movie genre must be one of: Action, Adventure, Comedy, Drama, Fantasy, Horror, Thriller, Sci-Fi, Crime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateFull(withField(t, tt.field, tt.raw))
			verr := asValidationError(t, err)

			if got := verr.Fields[tt.field]; got != tt.message {
				t.Errorf("Fields[%q] = %q, want %q", tt.field, got, tt.message)
			}
		})
	}
}

func TestValidateFull_ReportsEveryField(t *testing.T) {
	_, err := ValidateFull([]byte(`{"year": 1800, "duration": 0, "rate": 11}`))
	verr := asValidationError(t, err)

	want := []string{"director", "duration", "genre", "poster", "rate", "title", "year"}
	got := verr.FieldNames()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("FieldNames() = %v, want %v", got, want)
	}
	if !strings.HasPrefix(verr.Error(), "invalid movie: director: ") {
		t.Errorf("Error() = %q", verr.Error())
	}
}

func TestValidateFull_IgnoresUnknownFieldsAndID(t *testing.T) {
	body := `{"id":"caller-chosen","extra":true,` + strings.TrimPrefix(inceptionJSON, "{")
	movie, err := ValidateFull([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.ID != "" {
		t.Errorf("ID = %q, payload id must be ignored", movie.ID)
	}
}

func TestValidateFull_Body(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		malformed bool
	}{
		{"array", `[1,2]`, false},
		{"string", `"movie"`, false},
		{"number", `12`, false},
		{"null", `null`, false},
		{"truncated", `{"title":`, true},
		{"garbage", `title=Inception`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateFull([]byte(tt.body))
			if tt.malformed {
				var merr *MalformedBodyError
				if !errors.As(err, &merr) {
					t.Fatalf("expected *MalformedBodyError, got %T (%v)", err, err)
				}
				return
			}
			verr := asValidationError(t, err)
			if _, ok := verr.Fields[BodyField]; !ok || len(verr.Fields) != 1 {
				t.Errorf("expected a single body error, got %v", verr.Fields)
			}
		})
	}
}

func TestValidateFull_EmptyBodyMissesEveryRequiredField(t *testing.T) {
	_, err := ValidateFull(nil)
	verr := asValidationError(t, err)
	if len(verr.Fields) != 6 {
		t.Errorf("expected 6 missing fields, got %v", verr.Fields)
	}
	if _, ok := verr.Fields["rate"]; ok {
		t.Error("rate is optional and must not be reported missing")
	}
}

// ===================================================================================================
// ValidatePartial Tests
// ===================================================================================================

func TestValidatePartial_Empty(t *testing.T) {
	for _, body := range []string{"", "{}", "  {  }  "} {
		partial, err := ValidatePartial([]byte(body))
		if err != nil {
			t.Fatalf("ValidatePartial(%q) unexpected error: %v", body, err)
		}
		if !partial.IsEmpty() {
			t.Errorf("ValidatePartial(%q) = %v fields, want none", body, partial.Fields())
		}
	}
}

func TestValidatePartial_OnlyPresentFields(t *testing.T) {
	partial, err := ValidatePartial([]byte(`{"rate": 9, "genre": ["Drama"], "id": "x"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Join(partial.Fields(), ","); got != "rate,genre" {
		t.Errorf("Fields() = %q, want rate,genre", got)
	}
	if partial.Rate == nil || *partial.Rate != 9 {
		t.Errorf("Rate = %v, want 9", partial.Rate)
	}
	if len(partial.Genre) != 1 || partial.Genre[0] != models.GenreDrama {
		t.Errorf("Genre = %v, want [Drama]", partial.Genre)
	}
	if partial.Title != nil || partial.Year != nil {
		t.Error("absent fields must stay nil")
	}
}

func TestValidatePartial_AllFields(t *testing.T) {
	partial, err := ValidatePartial(withField(t, "rate", "3.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(partial.Fields()) != 7 {
		t.Errorf("Fields() = %v, want all seven", partial.Fields())
	}
	if *partial.Title != "Inception" || *partial.Year != 2010 || *partial.Director != "Nolan" ||
		*partial.Duration != 148 || *partial.Rate != 3.5 || *partial.Poster != "https://x.com/p.jpg" {
		t.Errorf("unexpected values: %+v", partial)
	}
}

func TestValidatePartial_RejectsPresentInvalidFields(t *testing.T) {
	_, err := ValidatePartial([]byte(`{"year": 1899, "title": null}`))
	verr := asValidationError(t, err)

	if verr.Mode != ModePartial {
		t.Errorf("Mode = %q, want %q", verr.Mode, ModePartial)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("expected year and title failures, got %v", verr.Fields)
	}
	if verr.Fields["title"] != "Movie title must be a string" {
		t.Errorf("title message = %q", verr.Fields["title"])
	}
}

func TestValidatePartial_RejectsNonObject(t *testing.T) {
	_, err := ValidatePartial([]byte(`[]`))
	verr := asValidationError(t, err)
	if _, ok := verr.Fields[BodyField]; !ok {
		t.Errorf("expected body error, got %v", verr.Fields)
	}
}

func TestMalformedBodyError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &MalformedBodyError{Err: inner}
	if !errors.Is(err, inner) {
		t.Error("MalformedBodyError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q", err.Error())
	}
}
