// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// Paint draws f onto dc, clearing it with the frame background first.
// The context's transform is left as it was found. Errors from individual
// items do not stop the remaining items from drawing; they are joined.
func Paint(dc *gg.Context, f *Frame) error {
	dc.ClearWithColor(f.Background)

	var errs []error
	for i := range f.Items {
		if err := paintItem(dc, &f.Items[i]); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func paintItem(dc *gg.Context, it *Item) error {
	dc.Push()
	defer dc.Pop()
	dc.Transform(it.Transform)

	if it.HasFill && len(it.Points) >= 3 {
		tracePath(dc, it.Points, it.Closed)
		dc.SetFillBrush(gg.Solid(it.Fill))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}

	if outline, closed := it.outline(); it.HasStroke && len(outline) >= 2 {
		tracePath(dc, outline, closed)
		dc.SetStrokeBrush(gg.Solid(it.Stroke))
		dc.SetLineWidth(it.StrokeWidth)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
	}
	return nil
}

// pathBuilder is the subset of gg.Context and recording.Recorder used to
// trace item outlines.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func tracePath(pb pathBuilder, pts []gg.Point, closed bool) {
	pb.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		pb.LineTo(p.X, p.Y)
	}
	if closed {
		pb.ClosePath()
	}
}
