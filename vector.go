package two

import (
	"math"

	"github.com/gogpu/gg"
)

// Vector is a vertex position. Z is carried along for callers that want
// it but is ignored by rendering.
type Vector struct {
	X, Y, Z float64
}

// V is a convenience function to create a Vector with Z = 0.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// FromPoint converts a gg.Point.
func FromPoint(p gg.Point) Vector {
	return Vector{X: p.X, Y: p.Y}
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns v scaled by s.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Lerp interpolates between v (t=0) and w (t=1).
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// Length returns the 2D length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Equal reports whether v and w have identical coordinates.
func (v Vector) Equal(w Vector) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}

// Point drops Z.
func (v Vector) Point() gg.Point {
	return gg.Point{X: v.X, Y: v.Y}
}

func toPoints(dst []gg.Point, vs []Vector) []gg.Point {
	dst = dst[:0]
	for _, v := range vs {
		dst = append(dst, v.Point())
	}
	return dst
}
