package two

// Rectangle is an axis-aligned rectangle polygon.
type Rectangle struct {
	Polygon
	width, height float64
}

// Width returns the rectangle width.
func (r *Rectangle) Width() float64 { return r.width }

// Height returns the rectangle height.
func (r *Rectangle) Height() float64 { return r.height }

// SetWidth resizes the rectangle around its translation.
func (r *Rectangle) SetWidth(w float64) {
	r.width = w
	r.regenerate()
}

// SetHeight resizes the rectangle around its translation.
func (r *Rectangle) SetHeight(h float64) {
	r.height = h
	r.regenerate()
}

func (r *Rectangle) regenerate() {
	r.reshape(RectangleVertices(0, 0, r.width, r.height))
}

// Ellipse is a polygon approximating an ellipse. Its width and height are
// the horizontal and vertical radii.
type Ellipse struct {
	Polygon
	rx, ry float64
	n      int
}

// Width returns the horizontal radius.
func (e *Ellipse) Width() float64 { return e.rx }

// Height returns the vertical radius.
func (e *Ellipse) Height() float64 { return e.ry }

// SetWidth changes the horizontal radius.
func (e *Ellipse) SetWidth(rx float64) {
	e.rx = rx
	e.regenerate()
}

// SetHeight changes the vertical radius.
func (e *Ellipse) SetHeight(ry float64) {
	e.ry = ry
	e.regenerate()
}

func (e *Ellipse) regenerate() {
	e.reshape(EllipseVertices(0, 0, e.rx, e.ry, e.n))
}

// Circle is a polygon approximating a circle.
type Circle struct {
	Polygon
	radius float64
	n      int
}

// Radius returns the circle radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius changes the radius, keeping the vertex count.
func (c *Circle) SetRadius(r float64) {
	c.radius = r
	c.reshape(EllipseVertices(0, 0, r, r, c.n))
}

// Arc is a pie-slice polygon: points along a circular arc plus the arc's
// center.
type Arc struct {
	Polygon
	center     Vector // arc center relative to the translation
	radius     float64
	start, end float64
	ccw        bool
	n          int
}

// Radius returns the arc radius.
func (a *Arc) Radius() float64 { return a.radius }

// StartAngle returns the start angle in radians.
func (a *Arc) StartAngle() float64 { return a.start }

// EndAngle returns the end angle in radians.
func (a *Arc) EndAngle() float64 { return a.end }

// SetRadius regenerates the arc around the same center with a new radius.
// The vertex count does not change.
func (a *Arc) SetRadius(r float64) {
	a.radius = r
	a.reshape(ArcVertices(a.center.X, a.center.Y, r, a.start, a.end, a.ccw, a.n))
}

// Curve is a polygon sampled from a Catmull-Rom spline.
type Curve struct {
	Polygon
	controls []Vector // relative to the translation
	n        int
}

// ControlPoints returns the spline control points, relative to the
// curve's translation.
func (c *Curve) ControlPoints() []Vector {
	return append([]Vector(nil), c.controls...)
}

// AddMorph resamples controlPoints, given relative to the curve's
// translation, into a morph target with as many vertices as the curve.
func (c *Curve) AddMorph(controlPoints []Vector, name string) (*Morph, error) {
	vs := CurveVertices(controlPoints, c.n)
	if c.closed && len(vs) > 0 && len(vs) < c.Len() {
		vs = append(vs, vs[0])
	}
	return c.Shape.AddMorph(vs, name)
}
