// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package supervisor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// errSimulated is returned by MockService while it has failures left.
var errSimulated = errors.New("simulated failure")

// MockService is a controllable suture.Service for tree tests.
type MockService struct {
	name       string
	startCount atomic.Int32
	stopCount  atomic.Int32
	failCount  atomic.Int32
	maxFails   int32
	started    chan struct{}
	once       sync.Once
}

func NewMockService(name string) *MockService {
	return &MockService{name: name, started: make(chan struct{})}
}

// Serve fails maxFails times, then runs until ctx is canceled.
func (m *MockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)
	defer m.stopCount.Add(1)

	if m.failCount.Add(1) <= m.maxFails {
		return errSimulated
	}

	m.once.Do(func() { close(m.started) })
	<-ctx.Done()
	return ctx.Err()
}

// Started closes once the service runs without failing.
func (m *MockService) Started() <-chan struct{} {
	return m.started
}

func (m *MockService) StartCount() int32 { return m.startCount.Load() }
func (m *MockService) StopCount() int32  { return m.stopCount.Load() }

func (m *MockService) String() string {
	return m.name
}
