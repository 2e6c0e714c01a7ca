// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host provides the animation-frame primitives a two.Driver runs
// on.
//
// A Scheduler runs one callback per display frame. Ticker does so from its
// own goroutine at a fixed interval. Manual does so only when its owner
// calls Step, which suits hosts that already have a frame loop (an ebiten
// Game, a gogpu OnDraw handler) and tests.
package host
