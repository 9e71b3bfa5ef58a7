// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/events"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	ws "github.com/tomtom215/marquee/internal/websocket"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "error",
		Format: "json",
		Output: io.Discard,
	})
}

const (
	allowedOrigin    = "http://localhost:8080"
	disallowedOrigin = "https://evil.example"
	inceptionBody    = `{"title":"Inception","year":2010,"director":"Nolan","duration":148,"poster":"https://x.com/p.jpg","genre":["Action","Sci-Fi"]}`
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:         1234,
			MaxBodyBytes: 1 << 20,
		},
		Security: config.SecurityConfig{
			CORSOrigins: []string{"http://localhost:8080", "http://localhost:8081", "https://movies.com"},
		},
	}
}

func seedMovies() []models.Movie {
	return []models.Movie{
		{ID: "m1", Title: "Superbad", Year: 2007, Director: "Greg Mottola", Duration: 113, Rate: 7.6,
			Poster: "https://example.com/superbad.jpg", Genre: []models.Genre{models.GenreComedy}},
		{ID: "m2", Title: "Heat", Year: 1995, Director: "Michael Mann", Duration: 170, Rate: 8.3,
			Poster: "https://example.com/heat.jpg", Genre: []models.Genre{models.GenreCrime, models.GenreDrama}},
		{ID: "m3", Title: "Shaun of the Dead", Year: 2004, Director: "Edgar Wright", Duration: 99, Rate: 7.9,
			Poster: "https://example.com/shaun.jpg", Genre: []models.Genre{models.GenreHorror, models.GenreComedy}},
	}
}

// hubPublisher delivers changes straight to a hub, standing in for the event bus.
type hubPublisher struct {
	hub *ws.Hub
}

func (p hubPublisher) PublishChange(_ context.Context, c events.Change) error {
	p.hub.BroadcastChange(c)
	return nil
}

// testEnv is a fully wired router over a seeded catalog.
type testEnv struct {
	handler http.Handler
	catalog *catalog.Catalog
	hub     *ws.Hub
}

func newTestEnv(t *testing.T, hub *ws.Hub, opts ...catalog.Option) *testEnv {
	t.Helper()
	if hub != nil {
		opts = append(opts, catalog.WithPublisher(hubPublisher{hub: hub}))
	}
	cat, err := catalog.NewFromSeed(seedMovies(), opts...)
	if err != nil {
		t.Fatalf("NewFromSeed() error: %v", err)
	}
	cfg := testConfig()
	router := NewRouter(NewHandler(cat, hub, cfg, "test"), cfg)
	return &testEnv{handler: router.SetupChi(), catalog: cat, hub: hub}
}

// do performs a request against the router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func assertMessage(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	var resp models.MessageResponse
	decodeJSON(t, rec, &resp)
	if resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}
