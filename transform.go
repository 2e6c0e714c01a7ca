package two

import "github.com/gogpu/gg"

// Transform places a shape or group inside its parent.
type Transform struct {
	Translation Vector
	Rotation    float64
	Scale       Vector
}

// IdentityTransform returns a transform with unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: Vector{X: 1, Y: 1}}
}

// Matrix composes translate * rotate * scale.
func (t Transform) Matrix() gg.Matrix {
	return gg.Translate(t.Translation.X, t.Translation.Y).
		Multiply(gg.Rotate(t.Rotation)).
		Multiply(gg.Scale(t.Scale.X, t.Scale.Y))
}
