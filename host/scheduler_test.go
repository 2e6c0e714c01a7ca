// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualStep(t *testing.T) {
	m := NewManual()
	if m.Step() {
		t.Error("Step() on empty scheduler should report false")
	}

	var calls int
	m.RequestFrame(func() { calls++ })
	if !m.Pending() {
		t.Error("Pending() = false after RequestFrame")
	}
	if !m.Step() {
		t.Error("Step() should report true")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if m.Step() {
		t.Error("callback should run only once")
	}
}

func TestManualReplacesPending(t *testing.T) {
	m := NewManual()
	var got string
	m.RequestFrame(func() { got = "first" })
	m.RequestFrame(func() { got = "second" })
	m.Step()
	if got != "second" {
		t.Errorf("got %q, want second", got)
	}
}

func TestManualReschedule(t *testing.T) {
	m := NewManual()
	var n int
	var tick func()
	tick = func() {
		n++
		if n < 3 {
			m.RequestFrame(tick)
		}
	}
	m.RequestFrame(tick)
	for m.Step() {
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
}

func TestTickerRunsRequestedFrame(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	t.Cleanup(tk.Close)

	done := make(chan struct{})
	tk.RequestFrame(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("requested frame did not run")
	}
}

func TestTickerClose(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	tk.Close()
	tk.Close()

	var ran atomic.Bool
	tk.RequestFrame(func() { ran.Store(true) })
	time.Sleep(10 * time.Millisecond)
	if ran.Load() {
		t.Error("closed ticker ran a callback")
	}
}

func TestTickerDefaultInterval(t *testing.T) {
	tk := NewTicker(0)
	defer tk.Close()
	if tk.Interval() != DefaultInterval {
		t.Errorf("Interval() = %v, want %v", tk.Interval(), DefaultInterval)
	}
}
