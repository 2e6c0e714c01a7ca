package two

import "math"

// spline is a Catmull-Rom curve through a list of control points,
// parameterized uniformly over the points.
type spline []Vector

// at returns the point at t in [0, 1].
func (sp spline) at(t float64) Vector {
	n := len(sp)
	switch n {
	case 0:
		return Vector{}
	case 1:
		return sp[0]
	}

	p := float64(n-1) * t
	i := int(math.Floor(p))
	w := p - float64(i)
	if i >= n-1 {
		i, w = n-2, 1
	}
	if i < 0 {
		i, w = 0, 0
	}

	p0 := sp[max(i-1, 0)]
	p1 := sp[i]
	p2 := sp[min(i+1, n-1)]
	p3 := sp[min(i+2, n-1)]

	return Vector{
		X: catmullRom(p0.X, p1.X, p2.X, p3.X, w),
		Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, w),
	}
}

func catmullRom(p0, p1, p2, p3, t float64) float64 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	t2 := t * t
	t3 := t * t2
	return (2*p1-2*p2+v0+v1)*t3 + (-3*p1+3*p2-2*v0-v1)*t2 + v0*t + p1
}

// sample evaluates the spline at count evenly spaced parameters i/count.
func (sp spline) sample(count int) []Vector {
	out := make([]Vector, count)
	for i := range out {
		out[i] = sp.at(float64(i) / float64(count))
	}
	return out
}
