package two

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/two/backend"
)

// Surface is a drawing destination with its own scene and renderer.
//
// The scene (the drawables added to the surface) is not synchronized:
// change it from update callbacks or while the driver is stopped.
type Surface struct {
	driver   *Driver
	renderer backend.Renderer
	opts     surfaceOptions
	factory  Factory

	children []Drawable
	col      collector
	frame    backend.Frame

	mu       sync.Mutex
	playing  bool
	disposed bool
	onUpdate func(frame int)
	onResize func(width, height int)
}

var _ container = (*Surface)(nil)

// NewSurface creates a surface registered with d. d may be nil for a
// surface that is only rendered explicitly through Render or Draw.
//
// When the requested backend is unavailable the best available one is
// used instead; Type reports which. With autoplay (the default) the
// surface starts playing and starts d.
func NewSurface(d *Driver, opts ...SurfaceOption) (*Surface, error) {
	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
	}

	r, err := backend.New(o.typ, backend.Options{
		Width:      o.width,
		Height:     o.height,
		Antialias:  o.antialias,
		Background: o.background,
	})
	if err != nil {
		return nil, fmt.Errorf("two: create renderer: %w", err)
	}
	if r.Type() != o.typ {
		Logger().Debug("two: backend fallback", "requested", o.typ, "using", r.Type())
	}

	s := &Surface{
		driver:   d,
		renderer: r,
		opts:     o,
		factory:  Factory{Resolution: o.resolution},
	}
	if d != nil {
		d.register(s)
	}
	if o.autoplay {
		s.Play()
	}
	return s, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.opts.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.opts.height }

// Type returns the backend actually in use.
func (s *Surface) Type() backend.Type { return s.renderer.Type() }

// Renderer returns the surface's renderer.
func (s *Surface) Renderer() backend.Renderer { return s.renderer }

// Fullscreen reports whether the surface follows its host window size.
func (s *Surface) Fullscreen() bool { return s.opts.fullscreen }

// Resolution returns the sample count used by the Make* methods.
func (s *Surface) Resolution() int { return s.opts.resolution }

// Background returns the clear color.
func (s *Surface) Background() gg.RGBA { return s.opts.background }

// SetBackground sets the clear color.
func (s *Surface) SetBackground(c gg.RGBA) { s.opts.background = c }

// Add appends drawables to the scene, detaching each from its previous
// parent. Translations are kept as they are.
func (s *Surface) Add(ds ...Drawable) {
	for _, d := range ds {
		if d != nil {
			attach(s, d)
		}
	}
}

// Remove detaches drawables that belong to this surface.
func (s *Surface) Remove(ds ...Drawable) {
	for _, d := range ds {
		if d != nil && d.base().parent == container(s) {
			d.Remove()
		}
	}
}

// Children returns the top-level drawables in insertion order.
func (s *Surface) Children() []Drawable {
	return append([]Drawable(nil), s.children...)
}

func (s *Surface) addChild(d Drawable) { s.children = append(s.children, d) }

func (s *Surface) removeChild(d Drawable) { s.children = removeFrom(s.children, d) }

// MakeRectangle creates a rectangle and adds it to the scene.
func (s *Surface) MakeRectangle(x, y, w, h float64) *Rectangle {
	r := s.factory.NewRectangle(x, y, w, h)
	s.Add(r)
	return r
}

// MakeEllipse creates an ellipse and adds it to the scene.
func (s *Surface) MakeEllipse(x, y, rx, ry float64) *Ellipse {
	e := s.factory.NewEllipse(x, y, rx, ry)
	s.Add(e)
	return e
}

// MakeCircle creates a circle and adds it to the scene.
func (s *Surface) MakeCircle(x, y, r float64) *Circle {
	c := s.factory.NewCircle(x, y, r)
	s.Add(c)
	return c
}

// MakeArc creates an arc and adds it to the scene.
func (s *Surface) MakeArc(x, y, r, start, end float64, ccw bool) *Arc {
	a := s.factory.NewArc(x, y, r, start, end, ccw)
	s.Add(a)
	return a
}

// MakeCurve creates a curve and adds it to the scene.
func (s *Surface) MakeCurve(points []Vector, open bool) *Curve {
	c := s.factory.NewCurve(points, open)
	s.Add(c)
	return c
}

// MakePolygon creates a polygon and adds it to the scene.
func (s *Surface) MakePolygon(points []Vector, open bool) *Polygon {
	p := NewPolygon(points, open)
	s.Add(p)
	return p
}

// MakeLine creates a line segment and adds it to the scene.
func (s *Surface) MakeLine(x1, y1, x2, y2 float64) *Line {
	l := NewLine(x1, y1, x2, y2)
	s.Add(l)
	return l
}

// MakePolyline creates an open line through points and adds it to the
// scene.
func (s *Surface) MakePolyline(points []Vector) *Line {
	l := NewPolyline(points)
	s.Add(l)
	return l
}

// MakeGroup groups children and adds the group to the scene.
func (s *Surface) MakeGroup(children ...Drawable) *Group {
	g := NewGroup(children...)
	s.Add(g)
	return g
}

// OnUpdate sets the callback run before each frame this surface renders.
func (s *Surface) OnUpdate(fn func(frame int)) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// OnResize sets the callback run by Fit.
func (s *Surface) OnResize(fn func(width, height int)) {
	s.mu.Lock()
	s.onResize = fn
	s.mu.Unlock()
}

// Play resumes rendering on every tick and starts the driver if it is
// stopped.
func (s *Surface) Play() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.playing = true
	s.mu.Unlock()

	if s.driver != nil && !s.driver.Running() {
		s.driver.Start()
	}
}

// Pause stops rendering this surface. The driver keeps running.
func (s *Surface) Pause() {
	s.mu.Lock()
	s.playing = false
	s.mu.Unlock()
}

// Playing reports whether the surface renders on each tick.
func (s *Surface) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Render is called by the driver once per tick. When the surface is
// playing it runs the update callback with frame and then draws.
func (s *Surface) Render(frame int) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrDisposed
	}
	if !s.playing {
		s.mu.Unlock()
		return nil
	}
	update := s.onUpdate
	s.mu.Unlock()

	if update != nil {
		update(frame)
	}
	return s.Draw()
}

// Draw renders the current scene regardless of the playing state.
func (s *Surface) Draw() error {
	if s.isDisposed() {
		return ErrDisposed
	}
	return s.renderer.Render(s.Frame())
}

// Frame flattens the scene into draw items, deepest first. The returned
// frame and its point slices are reused by the next call.
func (s *Surface) Frame() *backend.Frame {
	s.col.reset()
	root := gg.Identity()
	for _, d := range s.children {
		d.collect(&s.col, root)
	}
	s.frame.Width = s.opts.width
	s.frame.Height = s.opts.height
	s.frame.Background = s.opts.background
	s.col.flush(&s.frame)
	return &s.frame
}

// SetSize resizes the surface and its renderer.
func (s *Surface) SetSize(width, height int) error {
	if s.isDisposed() {
		return ErrDisposed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if err := s.renderer.Resize(width, height); err != nil {
		return fmt.Errorf("two: resize renderer: %w", err)
	}
	s.opts.width, s.opts.height = width, height
	return nil
}

// Fit resizes the surface to a host window and runs the resize callback.
func (s *Surface) Fit(width, height int) error {
	if err := s.SetSize(width, height); err != nil {
		return err
	}
	s.mu.Lock()
	resize := s.onResize
	s.mu.Unlock()
	if resize != nil {
		resize(width, height)
	}
	return nil
}

// Image returns the last rendered frame, or nil when the backend keeps no
// image.
func (s *Surface) Image() image.Image {
	if ir, ok := s.renderer.(backend.ImageRenderer); ok {
		return ir.Image()
	}
	return nil
}

// Encode writes the last rendered frame in format.
func (s *Surface) Encode(w io.Writer, format backend.Format) error {
	er, ok := s.renderer.(backend.EncodeRenderer)
	if !ok {
		return fmt.Errorf("%w: %s renderer cannot encode", backend.ErrUnsupportedFormat, s.Type())
	}
	return er.Encode(w, format)
}

func (s *Surface) isDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Dispose unregisters the surface from its driver and closes the
// renderer. Disposing twice is a no-op.
func (s *Surface) Dispose() error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil
	}
	s.disposed = true
	s.playing = false
	s.mu.Unlock()

	if s.driver != nil {
		s.driver.unregister(s)
	}
	return s.renderer.Close()
}
