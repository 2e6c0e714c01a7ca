// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenefile

import (
	"fmt"
	"strings"

	"github.com/gogpu/two"
)

// Shape describes one drawable. Which geometry fields apply depends on
// Kind:
//
//	rectangle  x, y, width, height
//	ellipse    x, y, width, height (radii)
//	circle     x, y, radius
//	arc        x, y, radius, start, end, ccw
//	curve      points, open
//	polygon    points, open
//	line       x, y, x2, y2
//	polyline   points
//	group      children
type Shape struct {
	Kind string `yaml:"kind" toml:"kind"`

	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	X2     float64 `yaml:"x2" toml:"x2"`
	Y2     float64 `yaml:"y2" toml:"y2"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Radius float64 `yaml:"radius" toml:"radius"`
	Start  float64 `yaml:"start" toml:"start"`
	End    float64 `yaml:"end" toml:"end"`
	CCW    bool    `yaml:"ccw" toml:"ccw"`

	Points [][2]float64 `yaml:"points" toml:"points"`
	Open   bool         `yaml:"open" toml:"open"`

	Fill     *Color    `yaml:"fill" toml:"fill"`
	Stroke   *Color    `yaml:"stroke" toml:"stroke"`
	Weight   *float64  `yaml:"weight" toml:"weight"`
	Rotation float64   `yaml:"rotation" toml:"rotation"`
	Scale    []float64 `yaml:"scale" toml:"scale"`
	Z        *int      `yaml:"z" toml:"z"`
	Hidden   bool      `yaml:"hidden" toml:"hidden"`
	Trim     []float64 `yaml:"trim" toml:"trim"`

	Children []Shape `yaml:"children" toml:"children"`
}

func (s *Shape) vectors() []two.Vector {
	vs := make([]two.Vector, len(s.Points))
	for i, p := range s.Points {
		vs[i] = two.V(p[0], p[1])
	}
	return vs
}

// Drawable builds the shape without adding it anywhere. f supplies the
// resolution for curved kinds.
func (s *Shape) Drawable(f two.Factory) (two.Drawable, error) {
	var d two.Drawable
	switch strings.ToLower(s.Kind) {
	case "rectangle", "rect":
		d = f.NewRectangle(s.X, s.Y, s.Width, s.Height)
	case "ellipse":
		d = f.NewEllipse(s.X, s.Y, s.Width, s.Height)
	case "circle":
		d = f.NewCircle(s.X, s.Y, s.Radius)
	case "arc":
		d = f.NewArc(s.X, s.Y, s.Radius, s.Start, s.End, s.CCW)
	case "curve":
		d = f.NewCurve(s.vectors(), s.Open)
	case "polygon":
		d = two.NewPolygon(s.vectors(), s.Open)
	case "line":
		d = two.NewLine(s.X, s.Y, s.X2, s.Y2)
	case "polyline":
		d = two.NewPolyline(s.vectors())
	case "group":
		children := make([]two.Drawable, 0, len(s.Children))
		for i := range s.Children {
			c, err := s.Children[i].Drawable(f)
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			children = append(children, c)
		}
		d = two.NewGroup(children...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}

	if err := s.style(d); err != nil {
		return nil, err
	}
	return d, nil
}

// style applies the shared presentation fields. On a group, fill and
// stroke fan out to every child.
func (s *Shape) style(d two.Drawable) error {
	if s.Fill != nil {
		switch v := d.(type) {
		case two.Fillable:
			v.SetFill(s.Fill.RGBA())
		case *two.Group:
			v.SetFill(s.Fill.RGBA())
		default:
			return fmt.Errorf("scenefile: %s has no fill", s.Kind)
		}
	}
	if s.Stroke != nil {
		switch v := d.(type) {
		case two.Strokeable:
			v.SetStroke(s.Stroke.RGBA())
		case *two.Group:
			v.SetStroke(s.Stroke.RGBA())
		}
	}
	if s.Weight != nil {
		switch v := d.(type) {
		case two.Strokeable:
			v.SetStrokeWeight(*s.Weight)
		case *two.Group:
			v.SetStrokeWeight(*s.Weight)
		}
	}

	if s.Rotation != 0 {
		d.SetRotation(s.Rotation)
	}
	switch len(s.Scale) {
	case 0:
	case 1:
		d.SetScale(s.Scale[0])
	case 2:
		d.SetScaleXY(s.Scale[0], s.Scale[1])
	default:
		return fmt.Errorf("scenefile: scale takes 1 or 2 values, got %d", len(s.Scale))
	}
	if s.Z != nil {
		d.SetZIndex(*s.Z)
	}
	if s.Hidden {
		d.SetVisible(false)
	}

	if len(s.Trim) > 0 {
		t, ok := d.(interface{ SetTrim(beginning, ending float64) })
		if !ok {
			return fmt.Errorf("scenefile: %s cannot be trimmed", s.Kind)
		}
		if len(s.Trim) != 2 {
			return fmt.Errorf("scenefile: trim takes 2 values, got %d", len(s.Trim))
		}
		t.SetTrim(s.Trim[0], s.Trim[1])
	}
	return nil
}
