package two

import "math"

// Rect is an axis-aligned bounding box.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Centroid returns the center of the box.
func (r Rect) Centroid() Vector {
	return Vector{X: r.Left + r.Width()/2, Y: r.Top + r.Height()/2}
}

// Union returns the smallest box containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, o.Left),
		Top:    math.Min(r.Top, o.Top),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Max(r.Bottom, o.Bottom),
	}
}

// Offset returns r moved by v.
func (r Rect) Offset(v Vector) Rect {
	return Rect{
		Left:   r.Left + v.X,
		Top:    r.Top + v.Y,
		Right:  r.Right + v.X,
		Bottom: r.Bottom + v.Y,
	}
}

// boundsOf returns the bounding box of vs. An empty slice yields the zero Rect.
func boundsOf(vs []Vector) Rect {
	if len(vs) == 0 {
		return Rect{}
	}
	r := Rect{Left: vs[0].X, Top: vs[0].Y, Right: vs[0].X, Bottom: vs[0].Y}
	for _, v := range vs[1:] {
		r.Left = math.Min(r.Left, v.X)
		r.Top = math.Min(r.Top, v.Y)
		r.Right = math.Max(r.Right, v.X)
		r.Bottom = math.Max(r.Bottom, v.Y)
	}
	return r
}
