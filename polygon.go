package two

import "github.com/gogpu/gg"

// Polygon is a filled and stroked shape. Rectangle, Ellipse, Circle, Arc
// and Curve are polygons with extra parameters.
type Polygon struct {
	Shape
	FillStyle
	StrokeStyle
}

var (
	_ Drawable   = (*Polygon)(nil)
	_ Fillable   = (*Polygon)(nil)
	_ Strokeable = (*Polygon)(nil)
)

// NewPolygon creates a polygon through points given in parent coordinates.
// The points are recentered on their bounding-box centroid, which becomes
// the translation. Unless open is set, the first point is repeated at the
// end when the last one differs.
func NewPolygon(points []Vector, open bool) *Polygon {
	p := &Polygon{}
	p.initPolygon(p, points, open)
	return p
}

func (p *Polygon) initPolygon(self Drawable, points []Vector, open bool) {
	vs := append([]Vector(nil), points...)
	centroid := Recenter(vs)
	if !open {
		vs = closePath(vs)
	}
	p.initShape(self, vs, !open)
	p.FillStyle = defaultFill()
	p.StrokeStyle = defaultStroke()
	p.xf.Translation = centroid
}

func (p *Polygon) collect(c *collector, parent gg.Matrix) {
	if p.hidden || len(p.vertices) == 0 {
		return
	}
	it, vs := p.item(parent)
	if p.fillVisible() {
		it.HasFill = true
		it.Fill = p.fill
	}
	p.applyStroke(&it, &p.StrokeStyle, vs)
	c.add(p.z, it)
}

// Clone copies the vertices, transform and styles into a new polygon and
// adds it to the same parent. Morph targets are not copied. Cloning a
// Rectangle or any other kind yields a plain Polygon with its vertices.
func (p *Polygon) Clone() *Polygon {
	c := p.CloneDetached()
	if p.parent != nil {
		attach(p.parent, c)
	}
	return c
}

// CloneDetached is Clone without adding the copy to a parent.
func (p *Polygon) CloneDetached() *Polygon {
	c := &Polygon{FillStyle: p.FillStyle, StrokeStyle: p.StrokeStyle}
	c.initShape(c, p.vertices, p.closed)
	c.xf = p.xf
	return c
}

// Line is an open, stroke-only shape.
type Line struct {
	Shape
	StrokeStyle
}

var (
	_ Drawable   = (*Line)(nil)
	_ Strokeable = (*Line)(nil)
)

// NewLine creates a line segment. Its translation is (x1, y1) and its
// vertices are relative to that point.
func NewLine(x1, y1, x2, y2 float64) *Line {
	return NewPolyline([]Vector{V(x1, y1), V(x2, y2)})
}

// NewPolyline creates an open line through points. Its translation is the
// first point and the vertices are relative to it.
func NewPolyline(points []Vector) *Line {
	l := &Line{}
	var origin Vector
	if len(points) > 0 {
		origin = points[0]
	}
	vs := make([]Vector, len(points))
	for i, p := range points {
		vs[i] = p.Sub(origin)
	}
	l.initShape(l, vs, false)
	l.StrokeStyle = defaultStroke()
	l.xf.Translation = origin
	return l
}

func (l *Line) collect(c *collector, parent gg.Matrix) {
	if l.hidden || !l.strokeVisible() || len(l.vertices) < 2 {
		return
	}
	it, vs := l.item(parent)
	l.applyStroke(&it, &l.StrokeStyle, vs)
	c.add(l.z, it)
}

// Clone copies the vertices, transform and stroke into a new line and
// adds it to the same parent.
func (l *Line) Clone() *Line {
	c := l.CloneDetached()
	if l.parent != nil {
		attach(l.parent, c)
	}
	return c
}

// CloneDetached is Clone without adding the copy to a parent.
func (l *Line) CloneDetached() *Line {
	c := &Line{StrokeStyle: l.StrokeStyle}
	c.initShape(c, l.vertices, false)
	c.xf = l.xf
	return c
}
