// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import "github.com/gogpu/gg"

// Item is one drawable polyline in a Frame.
//
// Points are in the item's local space; Transform maps them to surface
// pixels. StrokePoints, when set, replaces Points for the outline only:
// stroke trimming collapses outline vertices without touching the fill.
type Item struct {
	Points       []gg.Point
	StrokePoints []gg.Point
	Closed       bool
	Transform    gg.Matrix

	HasFill bool
	Fill    gg.RGBA

	HasStroke   bool
	Stroke      gg.RGBA
	StrokeWidth float64
}

// outline returns the points used for stroking and whether the stroke
// path is closed. A trimmed outline is never closed.
func (it *Item) outline() ([]gg.Point, bool) {
	if it.StrokePoints != nil {
		return it.StrokePoints, false
	}
	return it.Points, it.Closed
}

// Frame is a fully flattened scene ready for a Renderer.
// Items are drawn in slice order, so later items appear on top.
type Frame struct {
	Width, Height int
	Background    gg.RGBA
	Items         []Item
}

// Reset clears the item list while keeping its capacity.
func (f *Frame) Reset() {
	f.Items = f.Items[:0]
}
