// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// RasterRenderer paints frames into a gg.Context.
//
// The same type serves the Accelerated backend: gg routes fills and strokes
// through the registered GPU accelerator on its own, so the only difference
// is that accelerated renderers flush pending GPU work after each frame.
type RasterRenderer struct {
	dc     *gg.Context
	opts   Options
	typ    Type
	closed bool
}

var (
	_ ImageRenderer  = (*RasterRenderer)(nil)
	_ EncodeRenderer = (*RasterRenderer)(nil)
)

// NewRaster creates a CPU raster renderer.
func NewRaster(opts Options) (*RasterRenderer, error) {
	return newRasterRenderer(Raster, opts)
}

// NewAccelerated creates a renderer that relies on gg's registered GPU
// accelerator. Without one it still works, on the CPU.
func NewAccelerated(opts Options) (*RasterRenderer, error) {
	return newRasterRenderer(Accelerated, opts)
}

func newRasterRenderer(t Type, opts Options) (*RasterRenderer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !opts.Antialias {
		Logger().Debug("antialias cannot be disabled for gg rasterization", "type", t)
	}
	return &RasterRenderer{
		dc:   gg.NewContext(opts.Width, opts.Height),
		opts: opts,
		typ:  t,
	}, nil
}

// Type reports Raster or Accelerated.
func (r *RasterRenderer) Type() Type { return r.typ }

// Context exposes the underlying gg context.
func (r *RasterRenderer) Context() *gg.Context { return r.dc }

// Render paints f. A frame whose dimensions differ from the renderer's
// resizes it first.
func (r *RasterRenderer) Render(f *Frame) error {
	if r.closed {
		return ErrClosed
	}
	if f.Width > 0 && f.Height > 0 && (f.Width != r.dc.Width() || f.Height != r.dc.Height()) {
		if err := r.Resize(f.Width, f.Height); err != nil {
			return err
		}
	}

	err := Paint(r.dc, f)
	if r.typ == Accelerated {
		if ferr := r.dc.FlushGPU(); ferr != nil {
			Logger().Warn("gpu flush failed", "err", ferr)
		}
	}
	return err
}

// Resize changes the pixmap dimensions.
func (r *RasterRenderer) Resize(width, height int) error {
	if r.closed {
		return ErrClosed
	}
	o := r.opts
	o.Width, o.Height = width, height
	if err := o.validate(); err != nil {
		return err
	}
	if err := r.dc.Resize(width, height); err != nil {
		return err
	}
	r.opts = o
	return nil
}

// Image returns the last rendered frame.
func (r *RasterRenderer) Image() image.Image {
	return r.dc.Image()
}

// Encode writes the last frame. FormatSVG is not supported here.
func (r *RasterRenderer) Encode(w io.Writer, format Format) error {
	if r.closed {
		return ErrClosed
	}
	switch format {
	case FormatPNG:
		return r.dc.EncodePNG(w)
	case FormatJPEG:
		return r.dc.EncodeJPEG(w, DefaultJPEGQuality)
	default:
		return EncodeImage(w, r.dc.Image(), format)
	}
}

// Close releases the gg context.
func (r *RasterRenderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.dc.Close()
}
