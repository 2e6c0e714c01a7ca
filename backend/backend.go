// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Common backend errors.
var (
	// ErrNoBackendAvailable is returned when no registered backend can be used.
	ErrNoBackendAvailable = errors.New("backend: no backend available")

	// ErrInvalidSize is returned for non-positive renderer dimensions.
	ErrInvalidSize = errors.New("backend: invalid size")

	// ErrClosed is returned when a closed renderer is used.
	ErrClosed = errors.New("backend: renderer closed")

	// ErrUnsupportedFormat is returned by Encode for formats a renderer cannot produce.
	ErrUnsupportedFormat = errors.New("backend: unsupported format")
)

// Renderer draws frames to one output destination.
//
// Renderers are not safe for concurrent use; the frame driver calls them
// from a single goroutine.
type Renderer interface {
	// Type reports which backend produced this renderer.
	Type() Type

	// Render draws f, replacing the previous frame.
	Render(f *Frame) error

	// Resize changes the output dimensions.
	Resize(width, height int) error

	// Close releases the renderer. Close is idempotent.
	Close() error
}

// ImageRenderer is implemented by renderers whose last frame is available
// as an image.
type ImageRenderer interface {
	Renderer
	Image() image.Image
}

// EncodeRenderer is implemented by renderers that can serialize their last
// frame.
type EncodeRenderer interface {
	Renderer
	Encode(w io.Writer, format Format) error
}

// Options configures renderer creation.
type Options struct {
	// Width and Height are the output dimensions in pixels.
	Width, Height int

	// Antialias enables anti-aliased rasterization where the backend
	// supports turning it off. Default: true.
	Antialias bool

	// Background fills the output before each frame.
	Background gg.RGBA
}

// DefaultOptions returns Options with the defaults applied.
func DefaultOptions() Options {
	return Options{
		Width:     640,
		Height:    480,
		Antialias: true,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	return nil
}
