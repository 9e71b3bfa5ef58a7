// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package websocket provides the live change feed served at /ws.

Every successful catalog mutation is published on the event bus; the event
router hands it to the Hub, which fans it out to every connected client.
It uses gorilla/websocket with a hub-client architecture.

Key Components:

  - Hub: tracks connected clients and broadcasts messages to them
  - Client: a single WebSocket connection with read and write goroutines
  - Message: the {"type": ..., "data": ...} envelope sent to clients

Message Types:

  - movie_created: data is the change, including the stored movie
  - movie_updated: data is the change, including the merged movie
  - movie_deleted: data is the change, without a movie
  - pong: reply to a client "ping" message

Example frame:

	{"type":"movie_updated","data":{"event_id":"...","type":"movie_updated",
	 "movie_id":"5ad1a235-...","movie":{...},"occurred_at":"2026-01-02T15:04:05Z"}}

Delivery is best effort. A client whose send buffer is full is disconnected
rather than slowing down the hub, and broadcasts are dropped when the hub
channel itself is full.

Connection settings:
  - writeWait: 10 seconds
  - pongWait: 60 seconds
  - pingPeriod: 54 seconds
  - maxMessageSize: 4 KB
*/
package websocket
