// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package events carries movie change notifications over an in-process
Watermill bus.

After a successful create, update or delete the catalog hands a Change to the
Bus. A Router subscribed to the changes topic decodes each message and passes
it to a Sink, which in production is the WebSocket hub:

	catalog.Create ──► Bus.PublishChange ──► gochannel ──► Router ──► Sink.BroadcastChange

Delivery is best effort. The bus is not persistent, a Change published while
no subscriber exists is dropped, and publish failures never affect the
mutation that produced them.
*/
package events
