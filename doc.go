// Package two is a retained-mode 2D drawing layer built on gg.
//
// # Overview
//
// two lets you describe shapes (rectangles, circles, ellipses, arcs,
// polygons, curves, lines and groups) once and keep changing them between
// frames: their vertices, fill and stroke, transform, z-order, morph
// targets and stroke trimming. Every frame the scene is flattened into a
// list of draw items and handed to a backend renderer, which does the
// actual rasterization through gg.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/two"
//	    "github.com/gogpu/two/host"
//	)
//
//	d := two.NewDriver(two.WithScheduler(host.NewTicker(0)))
//	s, err := two.NewSurface(d, two.WithSize(400, 300))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c := s.MakeCircle(200, 150, 50)
//	c.SetFillRGB(1, 0.5, 0)
//	s.OnUpdate(func(frame int) {
//	    c.SetRotation(float64(frame) / 60)
//	})
//
// # Shapes
//
// Shape constructors generate vertices in surface coordinates and then
// recenter them: the bounding-box centroid of the raw points becomes the
// shape's translation and the stored vertices are relative to it. Closed
// shapes repeat their first vertex at the end.
//
// Curved shapes are sampled with a fixed resolution (Resolution, 32 by
// default). A Surface created WithResolution uses its own value for the
// shapes it makes.
//
// # Rendering
//
// A Surface owns a backend.Renderer chosen by type: accelerated, vector or
// raster. Requests for an unavailable backend fall back silently. Import
// github.com/gogpu/two/backend/gpu to make the accelerated backend
// available.
//
// # Frames
//
// A Driver ticks every surface registered with it. Each tick it calls the
// driver's update callback, then renders each playing surface (running the
// surface's own update callback first), then advances the frame counter
// and asks its host.Scheduler for the next tick.
//
// # Coordinate System
//
// Same as gg: origin at top-left, X increases right, Y increases down,
// angles in radians.
//
// # Concurrency
//
// Shapes and groups are not safe for concurrent use. Mutate them from the
// update callbacks, which run on the scheduler's goroutine, or stop the
// driver first.
package two

// Version is the library version.
const Version = "0.1.0"
