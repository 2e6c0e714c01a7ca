// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // registers "raster"
)

// Recording backend names looked up at export time.
const (
	recordingSVG    = "svg"
	recordingRaster = "raster"
)

// VectorRenderer captures each frame as a gg recording.
//
// Nothing is rasterized while rendering. Encode replays the last recording
// into a recording backend: "svg" for FormatSVG (provided by importing
// github.com/gogpu/gg-svg) and the built-in "raster" backend for image
// formats.
type VectorRenderer struct {
	opts   Options
	last   *recording.Recording
	closed bool
}

var (
	_ ImageRenderer  = (*VectorRenderer)(nil)
	_ EncodeRenderer = (*VectorRenderer)(nil)
)

// NewVectorRenderer creates a vector renderer.
func NewVectorRenderer(opts Options) (*VectorRenderer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &VectorRenderer{opts: opts}, nil
}

// Type returns Vector.
func (r *VectorRenderer) Type() Type { return Vector }

// Render records f.
func (r *VectorRenderer) Render(f *Frame) error {
	if r.closed {
		return ErrClosed
	}
	w, h := r.opts.Width, r.opts.Height
	if f.Width > 0 && f.Height > 0 {
		w, h = f.Width, f.Height
		r.opts.Width, r.opts.Height = w, h
	}

	rec := recording.NewRecorder(w, h)
	if f.Background.A > 0 {
		rec.ClearWithColor(f.Background)
	}
	for i := range f.Items {
		recordItem(rec, &f.Items[i])
	}
	r.last = rec.FinishRecording()
	return nil
}

func recordItem(rec *recording.Recorder, it *Item) {
	rec.Push()
	defer rec.Pop()
	rec.Transform(toRecordingMatrix(it.Transform))

	if it.HasFill && len(it.Points) >= 3 {
		tracePath(rec, it.Points, it.Closed)
		rec.SetFillRGBA(it.Fill.R, it.Fill.G, it.Fill.B, it.Fill.A)
		rec.Fill()
	}
	if outline, closed := it.outline(); it.HasStroke && len(outline) >= 2 {
		tracePath(rec, outline, closed)
		rec.SetStrokeRGBA(it.Stroke.R, it.Stroke.G, it.Stroke.B, it.Stroke.A)
		rec.SetLineWidth(it.StrokeWidth)
		rec.Stroke()
	}
}

func toRecordingMatrix(m gg.Matrix) recording.Matrix {
	return recording.Matrix{
		A: m.A, B: m.B, C: m.C,
		D: m.D, E: m.E, F: m.F,
	}
}

// Recording returns the last recorded frame, or nil before the first Render.
func (r *VectorRenderer) Recording() *recording.Recording {
	return r.last
}

// Resize changes the recording canvas size for subsequent frames.
func (r *VectorRenderer) Resize(width, height int) error {
	if r.closed {
		return ErrClosed
	}
	o := r.opts
	o.Width, o.Height = width, height
	if err := o.validate(); err != nil {
		return err
	}
	r.opts = o
	return nil
}

// Image rasterizes the last recording. It returns nil before the first
// Render or if the raster playback fails.
func (r *VectorRenderer) Image() image.Image {
	img, err := r.rasterize()
	if err != nil {
		Logger().Warn("vector rasterize failed", "err", err)
		return nil
	}
	return img
}

func (r *VectorRenderer) rasterize() (image.Image, error) {
	if r.last == nil {
		return nil, fmt.Errorf("backend: nothing recorded")
	}
	b, err := recording.NewBackend(recordingRaster)
	if err != nil {
		return nil, err
	}
	if err := r.last.Playback(b); err != nil {
		return nil, err
	}
	pb, ok := b.(recording.PixmapBackend)
	if !ok {
		return nil, fmt.Errorf("backend: %q recording backend has no pixmap", recordingRaster)
	}
	return pb.Pixmap().ToImage(), nil
}

// Encode writes the last recording. FormatSVG needs a registered "svg"
// recording backend; image formats go through the raster backend.
func (r *VectorRenderer) Encode(w io.Writer, format Format) error {
	if r.closed {
		return ErrClosed
	}
	if r.last == nil {
		return fmt.Errorf("backend: nothing recorded")
	}
	if format != FormatSVG {
		img, err := r.rasterize()
		if err != nil {
			return err
		}
		return EncodeImage(w, img, format)
	}

	if !recording.IsRegistered(recordingSVG) {
		return fmt.Errorf("%w: svg (import github.com/gogpu/gg-svg)", ErrUnsupportedFormat)
	}
	b, err := recording.NewBackend(recordingSVG)
	if err != nil {
		return err
	}
	if err := r.last.Playback(b); err != nil {
		return fmt.Errorf("backend: svg playback: %w", err)
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("%w: svg backend cannot write", ErrUnsupportedFormat)
	}
	_, err = wb.WriteTo(w)
	return err
}

// Close drops the last recording.
func (r *VectorRenderer) Close() error {
	r.closed = true
	r.last = nil
	return nil
}
