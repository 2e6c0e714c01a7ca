package two

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func vectorsEqual(a, b Vector, eps float64) bool {
	return almostEqual(a.X, b.X, eps) && almostEqual(a.Y, b.Y, eps)
}

func TestRectangleVertices(t *testing.T) {
	got := RectangleVertices(0, 0, 10, 20)
	want := []Vector{V(-5, -10), V(5, -10), V(5, 10), V(-5, 10)}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !vectorsEqual(got[i], want[i], epsilon) {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewRectangle(t *testing.T) {
	r := NewRectangle(100, 50, 10, 20)

	want := []Vector{V(-5, -10), V(5, -10), V(5, 10), V(-5, 10), V(-5, -10)}
	got := r.Vertices()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (closed rectangle repeats first corner)", len(got), len(want))
	}
	for i := range want {
		if !vectorsEqual(got[i], want[i], epsilon) {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
	if tr := r.Translation(); !vectorsEqual(tr, V(100, 50), epsilon) {
		t.Errorf("Translation() = %v, want (100,50)", tr)
	}
	if !r.Closed() {
		t.Error("rectangle should be closed")
	}
	if r.Width() != 10 || r.Height() != 20 {
		t.Errorf("size = %vx%v, want 10x20", r.Width(), r.Height())
	}
}

func TestEllipseVertices(t *testing.T) {
	tests := []struct {
		name   string
		rx, ry float64
		n      int
	}{
		{"circle default", 10, 10, Resolution},
		{"ellipse", 30, 10, 16},
		{"coarse", 5, 5, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := EllipseVertices(3, 4, tt.rx, tt.ry, tt.n)
			if len(pts) != tt.n {
				t.Fatalf("len = %d, want %d", len(pts), tt.n)
			}
			for i, p := range pts {
				theta := 2 * math.Pi * float64(i+1) / float64(tt.n)
				want := V(tt.rx*math.Cos(theta)+3, tt.ry*math.Sin(theta)+4)
				if !vectorsEqual(p, want, epsilon) {
					t.Errorf("point %d = %v, want %v", i, p, want)
				}
			}
		})
	}
}

func TestNewCircleResolution(t *testing.T) {
	c := NewCircle(0, 0, 10)
	if c.Len() != Resolution+1 {
		t.Errorf("Len() = %d, want %d", c.Len(), Resolution+1)
	}

	c = Factory{Resolution: 8}.NewCircle(0, 0, 10)
	if c.Len() != 9 {
		t.Errorf("Len() with resolution 8 = %d, want 9", c.Len())
	}
}

func TestArcVerticesHalfTurn(t *testing.T) {
	pts := ArcVertices(0, 0, 10, 0, math.Pi, false, 32)
	if len(pts) != 18 {
		t.Fatalf("len = %d, want 17 arc points plus center", len(pts))
	}
	if !vectorsEqual(pts[0], V(10, 0), epsilon) {
		t.Errorf("first = %v, want (10,0)", pts[0])
	}
	if !vectorsEqual(pts[16], V(-10, 0), 1e-9) {
		t.Errorf("last arc point = %v, want (-10,0)", pts[16])
	}
	if !vectorsEqual(pts[17], V(0, 0), epsilon) {
		t.Errorf("center = %v, want (0,0)", pts[17])
	}
	for i, p := range pts[:17] {
		if p.Y < -epsilon {
			t.Errorf("point %d = %v is outside the lower half", i, p)
		}
		if !almostEqual(p.Length(), 10, 1e-9) {
			t.Errorf("point %d radius = %v, want 10", i, p.Length())
		}
	}
}

func TestArcVerticesVariants(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		ccw        bool
		wantLen    int
		firstAngle float64
		lastAngle  float64
	}{
		{"quarter", 0, math.Pi / 2, false, 10, 0, math.Pi / 2},
		{"ccw quarter", 0, math.Pi / 2, true, 10, -math.Pi / 2, 0},
		{"full turn", 0, 2 * math.Pi, false, 34, 0, 2 * math.Pi},
		{"capped", 0, 3 * math.Pi, false, 34, 0, 2 * math.Pi},
		{"reversed sweeps backward", math.Pi / 2, 0, false, 10, math.Pi / 2, 0},
		{"odd sweep", 0, 1, false, 8, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := ArcVertices(0, 0, 1, tt.start, tt.end, tt.ccw, 32)
			if len(pts) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(pts), tt.wantLen)
			}
			first := V(math.Cos(tt.firstAngle), math.Sin(tt.firstAngle))
			last := V(math.Cos(tt.lastAngle), math.Sin(tt.lastAngle))
			if !vectorsEqual(pts[0], first, 1e-9) {
				t.Errorf("first = %v, want %v", pts[0], first)
			}
			if !vectorsEqual(pts[len(pts)-2], last, 1e-9) {
				t.Errorf("last arc point = %v, want %v", pts[len(pts)-2], last)
			}
		})
	}
}

func TestArcVerticesZeroSweep(t *testing.T) {
	pts := ArcVertices(5, 5, 2, 1, 1, false, 32)
	if len(pts) != 2 {
		t.Fatalf("len = %d, want start point and center", len(pts))
	}
	if !vectorsEqual(pts[1], V(5, 5), epsilon) {
		t.Errorf("center = %v, want (5,5)", pts[1])
	}
}

func TestNewArc(t *testing.T) {
	a := NewArc(50, 50, 10, 0, math.Pi, false)
	// 17 arc points, the center, and the closing vertex.
	if a.Len() != 19 {
		t.Errorf("Len() = %d, want 19", a.Len())
	}
	vs := a.Vertices()
	if !vs[0].Equal(vs[len(vs)-1]) {
		t.Error("closed arc should repeat its first vertex")
	}
	center := vs[17].Add(a.Translation())
	if !vectorsEqual(center, V(50, 50), 1e-9) {
		t.Errorf("absolute center = %v, want (50,50)", center)
	}
}

func TestRecenterIdempotent(t *testing.T) {
	pts := []Vector{V(10, 10), V(30, 12), V(25, 40), V(12, 33)}
	c := Recenter(pts)
	if !vectorsEqual(c, V(20, 25), epsilon) {
		t.Errorf("centroid = %v, want (20,25)", c)
	}
	if got := boundsOf(pts).Centroid(); !vectorsEqual(got, V(0, 0), epsilon) {
		t.Errorf("centroid after recentering = %v, want (0,0)", got)
	}
	if again := Recenter(pts); !vectorsEqual(again, V(0, 0), epsilon) {
		t.Errorf("second Recenter = %v, want (0,0)", again)
	}
}

func TestNewPolygonClosing(t *testing.T) {
	tri := []Vector{V(0, 0), V(10, 0), V(5, 10)}

	closed := NewPolygon(tri, false)
	if closed.Len() != 4 {
		t.Errorf("closed Len() = %d, want 4", closed.Len())
	}

	open := NewPolygon(tri, true)
	if open.Len() != 3 || open.Closed() {
		t.Errorf("open Len() = %d closed=%v, want 3 and false", open.Len(), open.Closed())
	}

	already := NewPolygon([]Vector{V(0, 0), V(10, 0), V(5, 10), V(0, 0)}, false)
	if already.Len() != 4 {
		t.Errorf("pre-closed Len() = %d, want 4", already.Len())
	}

	if tri[0] != V(0, 0) {
		t.Error("NewPolygon must not modify its input")
	}
}

func TestNewLine(t *testing.T) {
	l := NewLine(10, 20, 40, 60)
	if tr := l.Translation(); tr != V(10, 20) {
		t.Errorf("Translation() = %v, want (10,20)", tr)
	}
	vs := l.Vertices()
	if len(vs) != 2 || vs[0] != V(0, 0) || vs[1] != V(30, 40) {
		t.Errorf("Vertices() = %v, want [(0,0) (30,40)]", vs)
	}
	if l.Closed() {
		t.Error("line should be open")
	}
}

func TestCurveVertices(t *testing.T) {
	ctrl := []Vector{V(0, 0), V(10, 10), V(20, 0)}
	pts := CurveVertices(ctrl, 8)
	if len(pts) != 24 {
		t.Fatalf("len = %d, want 24", len(pts))
	}
	if !vectorsEqual(pts[0], ctrl[0], epsilon) {
		t.Errorf("first sample = %v, want first control point", pts[0])
	}
	// Sample 12 is parameter 1/2, which lands on the middle control point.
	if !vectorsEqual(pts[12], ctrl[1], 1e-9) {
		t.Errorf("sample 12 = %v, want middle control point", pts[12])
	}
}

func TestNewCurve(t *testing.T) {
	ctrl := []Vector{V(0, 0), V(10, 10), V(20, 0), V(30, 10)}

	open := NewCurve(ctrl, true)
	if open.Len() != 4*Resolution {
		t.Errorf("open Len() = %d, want %d", open.Len(), 4*Resolution)
	}
	closed := NewCurve(ctrl, false)
	if closed.Len() != 4*Resolution+1 {
		t.Errorf("closed Len() = %d, want %d", closed.Len(), 4*Resolution+1)
	}
	if got := len(closed.ControlPoints()); got != 4 {
		t.Errorf("ControlPoints() len = %d, want 4", got)
	}
}
