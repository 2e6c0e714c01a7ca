package two

import (
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/two/backend"
	"github.com/gogpu/two/host"
)

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	s, err := two.NewSurface(d,
//	    two.WithType(backend.Vector),
//	    two.WithSize(800, 600),
//	    two.WithAutoplay(false),
//	)
type SurfaceOption func(*surfaceOptions)

type surfaceOptions struct {
	typ        backend.Type
	width      int
	height     int
	fullscreen bool
	autoplay   bool
	antialias  bool
	background gg.RGBA
	resolution int
}

func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		typ:        backend.Accelerated,
		width:      640,
		height:     480,
		autoplay:   true,
		antialias:  true,
		background: gg.Transparent,
		resolution: Resolution,
	}
}

// WithType selects the rendering backend. Unavailable backends fall back
// to the best available one. Default: backend.Accelerated.
func WithType(t backend.Type) SurfaceOption {
	return func(o *surfaceOptions) {
		o.typ = t
	}
}

// WithSize sets the surface dimensions in pixels. Default: 640x480.
func WithSize(width, height int) SurfaceOption {
	return func(o *surfaceOptions) {
		o.width = width
		o.height = height
	}
}

// WithFullscreen marks the surface as tracking its host window: hosts
// call Fit with the window size whenever it changes.
func WithFullscreen(fullscreen bool) SurfaceOption {
	return func(o *surfaceOptions) {
		o.fullscreen = fullscreen
	}
}

// WithAutoplay controls whether the surface starts playing, and starts
// its driver, on creation. Default: true.
func WithAutoplay(autoplay bool) SurfaceOption {
	return func(o *surfaceOptions) {
		o.autoplay = autoplay
	}
}

// WithAntialias is passed to the backend. gg always anti-aliases, so
// disabling it is advisory. Default: true.
func WithAntialias(antialias bool) SurfaceOption {
	return func(o *surfaceOptions) {
		o.antialias = antialias
	}
}

// WithBackground sets the color each frame is cleared to.
// Default: transparent.
func WithBackground(c gg.RGBA) SurfaceOption {
	return func(o *surfaceOptions) {
		o.background = c
	}
}

// WithResolution sets the sample count used by the surface's Make*
// methods for curved shapes. Default: Resolution.
func WithResolution(n int) SurfaceOption {
	return func(o *surfaceOptions) {
		if n > 0 {
			o.resolution = n
		}
	}
}

// DriverOption configures a Driver during creation.
type DriverOption func(*driverOptions)

type driverOptions struct {
	scheduler host.Scheduler
	interval  time.Duration
}

// WithScheduler makes the driver request frames from s instead of
// starting its own host.Ticker. The driver does not close s.
func WithScheduler(s host.Scheduler) DriverOption {
	return func(o *driverOptions) {
		o.scheduler = s
	}
}

// WithFrameInterval sets the interval of the driver's own ticker.
// It has no effect together with WithScheduler.
// Default: host.DefaultInterval.
func WithFrameInterval(d time.Duration) DriverOption {
	return func(o *driverOptions) {
		o.interval = d
	}
}
