// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package websocket

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/events"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

// setupHub creates a hub running until the test ends
func setupHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.RunWithContext(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

// createTestClient creates a client without a connection
func createTestClient(hub *Hub) *Client {
	return &Client{id: clientIDCounter.Add(1), hub: hub, conn: nil, send: make(chan Message, 256)}
}

// registerClient registers a client and waits for registration to complete
func registerClient(hub *Hub, client *Client) {
	hub.Register <- client
	time.Sleep(20 * time.Millisecond)
}

func testChange(t events.Type) events.Change {
	if t == events.TypeDeleted {
		return events.NewChange(t, "m1", nil)
	}
	return events.NewChange(t, "m1", &models.Movie{
		ID:       "m1",
		Title:    "Heat",
		Year:     1995,
		Director: "Michael Mann",
		Duration: 170,
		Rate:     8.3,
		Poster:   "https://example.com/heat.jpg",
		Genre:    []models.Genre{models.GenreCrime},
	})
}

func TestNewHub(t *testing.T) {
	hub := NewHub()

	checks := []struct {
		check  bool
		errMsg string
	}{
		{hub.clients != nil, "clients map not initialized"},
		{hub.broadcast != nil, "broadcast channel not initialized"},
		{hub.Register != nil, "Register channel not initialized"},
		{hub.Unregister != nil, "Unregister channel not initialized"},
		{len(hub.clients) == 0, "clients map should be empty"},
	}

	for _, c := range checks {
		if !c.check {
			t.Error(c.errMsg)
		}
	}
}

func TestHub_ClientRegistration(t *testing.T) {
	hub := setupHub(t)
	client := createTestClient(hub)
	registerClient(hub, client)

	if hub.GetClientCount() != 1 {
		t.Errorf("Expected 1 client, got %d", hub.GetClientCount())
	}
	if got := testutil.ToFloat64(metrics.WSClients); got != 1 {
		t.Errorf("websocket_clients = %v, want 1", got)
	}

	hub.Unregister <- client
	time.Sleep(20 * time.Millisecond)

	if hub.GetClientCount() != 0 {
		t.Errorf("Expected 0 clients after unregister, got %d", hub.GetClientCount())
	}
	if _, ok := <-client.send; ok {
		t.Error("send channel should be closed after unregister")
	}
}

func TestHub_UnregisterNonExistentClient(t *testing.T) {
	hub := setupHub(t)
	hub.Unregister <- createTestClient(hub)
	time.Sleep(20 * time.Millisecond)

	if hub.GetClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", hub.GetClientCount())
	}
}

func TestHub_BroadcastChange(t *testing.T) {
	for _, typ := range []events.Type{events.TypeCreated, events.TypeUpdated, events.TypeDeleted} {
		t.Run(string(typ), func(t *testing.T) {
			hub := setupHub(t)
			client := createTestClient(hub)
			registerClient(hub, client)

			change := testChange(typ)
			hub.BroadcastChange(change)

			select {
			case msg := <-client.send:
				if msg.Type != string(typ) {
					t.Errorf("Type = %q, want %q", msg.Type, typ)
				}
				got, ok := msg.Data.(events.Change)
				if !ok {
					t.Fatalf("Data = %T, want events.Change", msg.Data)
				}
				if got.EventID != change.EventID {
					t.Errorf("EventID = %q, want %q", got.EventID, change.EventID)
				}
			case <-time.After(500 * time.Millisecond):
				t.Fatal("Timeout waiting for message")
			}
		})
	}
}

func TestHub_BroadcastToAllClients(t *testing.T) {
	hub := setupHub(t)

	const numClients = 3
	clients := make([]*Client, numClients)
	for i := range clients {
		clients[i] = createTestClient(hub)
		registerClient(hub, clients[i])
	}

	before := testutil.ToFloat64(metrics.WSMessagesSent)
	hub.BroadcastJSON(MessageTypeMovieDeleted, map[string]string{"movie_id": "m1"})

	var wg sync.WaitGroup
	for i, c := range clients {
		wg.Add(1)
		go func(idx int, c *Client) {
			defer wg.Done()
			select {
			case msg := <-c.send:
				if msg.Type != MessageTypeMovieDeleted {
					t.Errorf("client %d got %q", idx, msg.Type)
				}
			case <-time.After(500 * time.Millisecond):
				t.Errorf("Client %d did not receive broadcast", idx)
			}
		}(i, c)
	}
	wg.Wait()

	if delta := testutil.ToFloat64(metrics.WSMessagesSent) - before; delta != numClients {
		t.Errorf("messages sent delta = %v, want %d", delta, numClients)
	}
}

func TestHub_BroadcastToFullClient(t *testing.T) {
	hub := setupHub(t)

	client := &Client{id: clientIDCounter.Add(1), hub: hub, send: make(chan Message, 1)}
	registerClient(hub, client)
	client.send <- Message{Type: "filler"}

	before := testutil.ToFloat64(metrics.WSErrors.WithLabelValues("slow_client"))
	hub.BroadcastJSON(MessageTypeMovieCreated, nil)

	deadline := time.Now().Add(time.Second)
	for hub.GetClientCount() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.GetClientCount() != 0 {
		t.Fatal("slow client should be removed")
	}
	if delta := testutil.ToFloat64(metrics.WSErrors.WithLabelValues("slow_client")) - before; delta != 1 {
		t.Errorf("slow_client errors delta = %v, want 1", delta)
	}
}

func TestHub_ChannelFullDoesNotBlock(t *testing.T) {
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.Disabled)
	defer zerolog.SetGlobalLevel(oldLevel)

	hub := NewHub() // not running, so the channel fills
	for i := 0; i < 256; i++ {
		hub.BroadcastChange(testChange(events.TypeDeleted))
	}

	done := make(chan struct{})
	go func() {
		hub.BroadcastChange(testChange(events.TypeDeleted))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("BroadcastChange blocked on a full channel")
	}
}

func TestHub_RunWithContext_ClosesClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.RunWithContext(ctx) }()

	client := createTestClient(hub)
	registerClient(hub, client)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RunWithContext() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("RunWithContext did not return")
	}

	if hub.GetClientCount() != 0 {
		t.Errorf("clients left after shutdown: %d", hub.GetClientCount())
	}
	if _, ok := <-client.send; ok {
		t.Error("client send channel should be closed on shutdown")
	}
}

func TestGetShutdownReason(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if got := getShutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled: got %q", got)
	}

	expired, cancel2 := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel2()
	<-expired.Done()
	if got := getShutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("deadline: got %q", got)
	}
}

func TestHub_ImplementsSink(t *testing.T) {
	var _ events.Sink = NewHub()
}

func TestMarshalMessage(t *testing.T) {
	data, err := MarshalMessage(Message{Type: MessageTypeMovieUpdated, Data: testChange(events.TypeUpdated)})
	if err != nil {
		t.Fatalf("MarshalMessage() error: %v", err)
	}
	for _, want := range []string{`"type":"movie_updated"`, `"data":{`, `"movie_id":"m1"`, `"title":"Heat"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("encoded message %s missing %s", data, want)
		}
	}
}
