// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"sync"
	"time"
)

// Scheduler runs a callback on the next frame.
//
// A Scheduler holds at most one pending callback: requesting a frame while
// one is pending replaces it.
type Scheduler interface {
	RequestFrame(fn func())
}

// DefaultInterval is the Ticker interval used when none is given.
const DefaultInterval = time.Second / 60

// Ticker is a Scheduler driven by a wall-clock ticker.
//
// Callbacks run one at a time on the Ticker's goroutine. A tick with no
// pending callback does nothing.
type Ticker struct {
	mu      sync.Mutex
	pending func()

	interval time.Duration
	done     chan struct{}
	stopped  chan struct{}
	once     sync.Once
}

var _ Scheduler = (*Ticker)(nil)

// NewTicker starts a Ticker. A non-positive interval means DefaultInterval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &Ticker{
		interval: interval,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go t.run()
	return t
}

// Interval returns the tick interval.
func (t *Ticker) Interval() time.Duration { return t.interval }

// RequestFrame schedules fn for the next tick.
func (t *Ticker) RequestFrame(fn func()) {
	t.mu.Lock()
	t.pending = fn
	t.mu.Unlock()
}

func (t *Ticker) run() {
	defer close(t.stopped)

	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-tk.C:
			t.mu.Lock()
			fn := t.pending
			t.pending = nil
			t.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}
}

// Close stops the ticker and waits for a running callback to return.
// Pending callbacks are dropped. Close must not be called from a callback.
func (t *Ticker) Close() {
	t.once.Do(func() { close(t.done) })
	<-t.stopped
}

// Manual is a Scheduler stepped by its owner.
type Manual struct {
	mu      sync.Mutex
	pending func()
}

var _ Scheduler = (*Manual)(nil)

// NewManual creates a Manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// RequestFrame queues fn for the next Step.
func (m *Manual) RequestFrame(fn func()) {
	m.mu.Lock()
	m.pending = fn
	m.mu.Unlock()
}

// Pending reports whether a callback is queued.
func (m *Manual) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending != nil
}

// Step runs the queued callback, if any, on the calling goroutine and
// reports whether one ran. The callback may request the next frame.
func (m *Manual) Step() bool {
	m.mu.Lock()
	fn := m.pending
	m.pending = nil
	m.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}
