package two

import "math"

// Resolution is the default sample count for curved shapes.
const Resolution = 32

// Factory builds shapes with a given resolution. The zero Factory uses
// Resolution.
type Factory struct {
	Resolution int
}

func (f Factory) resolution() int {
	if f.Resolution <= 0 {
		return Resolution
	}
	return f.Resolution
}

// RectangleVertices returns the four corners of a w×h rectangle centered
// on (x, y), clockwise from the top-left.
func RectangleVertices(x, y, w, h float64) []Vector {
	hw, hh := w/2, h/2
	return []Vector{
		V(x-hw, y-hh),
		V(x+hw, y-hh),
		V(x+hw, y+hh),
		V(x-hw, y+hh),
	}
}

// EllipseVertices returns n points on the ellipse with radii rx, ry
// centered on (x, y). Point i sits at angle 2π(i+1)/n.
func EllipseVertices(x, y, rx, ry float64, n int) []Vector {
	if n <= 0 {
		n = Resolution
	}
	pts := make([]Vector, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i+1) / float64(n)
		pts[i] = V(rx*math.Cos(theta)+x, ry*math.Sin(theta)+y)
	}
	return pts
}

// ArcVertices returns points on the circle of radius r around (x, y) from
// start to end, followed by the center point itself so the outline closes
// as a pie slice.
//
// Angles advance in steps of 2π/n, so the point count is pro-rated by the
// swept fraction of a full turn; the last angle is clamped to end. With
// ccw set the sweep runs from -end to -start. The sweep is capped at one
// full turn. A zero sweep yields the start point and the center.
func ArcVertices(x, y, r, start, end float64, ccw bool, n int) []Vector {
	if n <= 0 {
		n = Resolution
	}
	lo, hi := start, end
	if ccw {
		lo, hi = -end, -start
	}
	sweep := hi - lo
	phi := math.Min(math.Abs(sweep), 2*math.Pi)

	polar := func(theta float64) Vector {
		return V(r*math.Cos(theta)+x, r*math.Sin(theta)+y)
	}

	if phi == 0 {
		return []Vector{polar(lo), V(x, y)}
	}

	dir := 1.0
	if sweep < 0 {
		dir = -1
	}
	step := 2 * math.Pi / float64(n)
	count := int(math.Ceil(phi/step + 1 - 1e-9))

	pts := make([]Vector, 0, count+1)
	for i := 0; i < count; i++ {
		a := math.Min(float64(i)*step, phi)
		pts = append(pts, polar(lo+dir*a))
	}
	return append(pts, V(x, y))
}

// CurveVertices samples a Catmull-Rom spline through points at
// len(points)*n parameters i/(len(points)*n).
func CurveVertices(points []Vector, n int) []Vector {
	if n <= 0 {
		n = Resolution
	}
	return spline(points).sample(len(points) * n)
}

// Recenter subtracts the bounding-box centroid of points from every point
// in place and returns the centroid.
func Recenter(points []Vector) Vector {
	c := boundsOf(points).Centroid()
	for i := range points {
		points[i].X -= c.X
		points[i].Y -= c.Y
	}
	return c
}

// NewRectangle creates a w×h rectangle centered on (x, y).
func (f Factory) NewRectangle(x, y, w, h float64) *Rectangle {
	r := &Rectangle{width: w, height: h}
	r.initPolygon(r, RectangleVertices(x, y, w, h), false)
	return r
}

// NewEllipse creates an ellipse with radii rx, ry centered on (x, y).
func (f Factory) NewEllipse(x, y, rx, ry float64) *Ellipse {
	n := f.resolution()
	e := &Ellipse{rx: rx, ry: ry, n: n}
	e.initPolygon(e, EllipseVertices(x, y, rx, ry, n), false)
	return e
}

// NewCircle creates a circle of radius r centered on (x, y).
func (f Factory) NewCircle(x, y, r float64) *Circle {
	n := f.resolution()
	c := &Circle{radius: r, n: n}
	c.initPolygon(c, EllipseVertices(x, y, r, r, n), false)
	return c
}

// NewArc creates a pie slice of radius r around (x, y) from start to end.
func (f Factory) NewArc(x, y, r, start, end float64, ccw bool) *Arc {
	n := f.resolution()
	a := &Arc{radius: r, start: start, end: end, ccw: ccw, n: n}
	a.initPolygon(a, ArcVertices(x, y, r, start, end, ccw, n), false)
	a.center = V(x, y).Sub(a.xf.Translation)
	return a
}

// NewCurve creates a smooth curve through points. Unless open is set the
// curve is closed back to its first sample.
func (f Factory) NewCurve(points []Vector, open bool) *Curve {
	n := f.resolution()
	c := &Curve{n: n}
	c.initPolygon(c, CurveVertices(points, n), open)
	c.controls = make([]Vector, len(points))
	for i, p := range points {
		c.controls[i] = p.Sub(c.xf.Translation)
	}
	return c
}

var defaultFactory Factory

// NewRectangle creates a w×h rectangle centered on (x, y).
func NewRectangle(x, y, w, h float64) *Rectangle {
	return defaultFactory.NewRectangle(x, y, w, h)
}

// NewEllipse creates an ellipse with radii rx, ry centered on (x, y).
func NewEllipse(x, y, rx, ry float64) *Ellipse {
	return defaultFactory.NewEllipse(x, y, rx, ry)
}

// NewCircle creates a circle of radius r centered on (x, y).
func NewCircle(x, y, r float64) *Circle {
	return defaultFactory.NewCircle(x, y, r)
}

// NewArc creates a pie slice of radius r around (x, y) from start to end.
func NewArc(x, y, r, start, end float64, ccw bool) *Arc {
	return defaultFactory.NewArc(x, y, r, start, end, ccw)
}

// NewCurve creates a smooth curve through points.
func NewCurve(points []Vector, open bool) *Curve {
	return defaultFactory.NewCurve(points, open)
}
