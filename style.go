package two

import "github.com/gogpu/gg"

// Fillable is implemented by shapes with a fill.
type Fillable interface {
	Fill() gg.RGBA
	SetFill(c gg.RGBA)
	SetFillRGB(r, g, b float64)
	NoFill()
}

// Strokeable is implemented by shapes with an outline.
type Strokeable interface {
	Stroke() gg.RGBA
	SetStroke(c gg.RGBA)
	SetStrokeRGB(r, g, b float64)
	StrokeWeight() float64
	SetStrokeWeight(w float64)
	NoStroke()
}

// FillStyle is the fill mixin embedded by closed shapes.
// The fill is drawn while its alpha is positive.
type FillStyle struct {
	fill gg.RGBA
}

func defaultFill() FillStyle {
	return FillStyle{fill: gg.White}
}

// Fill returns the fill color.
func (f *FillStyle) Fill() gg.RGBA { return f.fill }

// SetFill sets the fill color and opacity.
func (f *FillStyle) SetFill(c gg.RGBA) { f.fill = c }

// SetFillRGB sets an opaque fill color.
func (f *FillStyle) SetFillRGB(r, g, b float64) { f.fill = gg.RGB(r, g, b) }

// NoFill hides the fill.
func (f *FillStyle) NoFill() { f.fill = gg.Transparent }

func (f *FillStyle) fillVisible() bool { return f.fill.A > 0 }

// StrokeStyle is the outline mixin embedded by every shape.
// The outline is drawn while its alpha and weight are both positive.
// It also carries the trim window, see SetTrim.
type StrokeStyle struct {
	stroke    gg.RGBA
	weight    float64
	beginning float64
	ending    float64
}

func defaultStroke() StrokeStyle {
	return StrokeStyle{stroke: gg.Black, weight: 1, ending: 1}
}

// Stroke returns the outline color.
func (s *StrokeStyle) Stroke() gg.RGBA { return s.stroke }

// SetStroke sets the outline color and opacity.
func (s *StrokeStyle) SetStroke(c gg.RGBA) { s.stroke = c }

// SetStrokeRGB sets an opaque outline color.
func (s *StrokeStyle) SetStrokeRGB(r, g, b float64) { s.stroke = gg.RGB(r, g, b) }

// StrokeWeight returns the line width.
func (s *StrokeStyle) StrokeWeight() float64 { return s.weight }

// SetStrokeWeight sets the line width. Zero hides the outline.
func (s *StrokeStyle) SetStrokeWeight(w float64) { s.weight = w }

// NoStroke hides the outline by zeroing both its weight and color.
func (s *StrokeStyle) NoStroke() {
	s.weight = 0
	s.stroke = gg.Transparent
}

func (s *StrokeStyle) strokeVisible() bool { return s.stroke.A > 0 && s.weight > 0 }
