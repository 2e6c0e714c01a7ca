// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenefile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/two"
	"github.com/gogpu/two/backend"
)

const yamlScene = `
surface:
  type: raster
  width: 200
  height: 100
  autoplay: false
  background: "#ffffff"
shapes:
  - kind: rectangle
    x: 50.0
    y: 50.0
    width: 40.0
    height: 20.0
    fill: "#ff0000"
    stroke: none
  - kind: polyline
    points: [[0.0, 0.0], [10.0, 0.0], [10.0, 10.0]]
    weight: 3.0
    trim: [0.0, 0.5]
  - kind: group
    z: 7
    children:
      - kind: circle
        x: 10.0
        y: 10.0
        radius: 5.0
      - kind: circle
        x: 30.0
        y: 10.0
        radius: 5.0
`

const tomlScene = `
[surface]
type = "raster"
width = 200
height = 100
autoplay = false
background = "#ffffff"

[[shapes]]
kind = "rectangle"
x = 50.0
y = 50.0
width = 40.0
height = 20.0
fill = "#ff0000"
stroke = "none"

[[shapes]]
kind = "polyline"
points = [[0.0, 0.0], [10.0, 0.0], [10.0, 10.0]]
weight = 3.0
trim = [0.0, 0.5]

[[shapes]]
kind = "group"
z = 7

[[shapes.children]]
kind = "circle"
x = 10.0
y = 10.0
radius = 5.0

[[shapes.children]]
kind = "circle"
x = 30.0
y = 10.0
radius = 5.0
`

func TestParseFormatsAgree(t *testing.T) {
	y, err := Parse([]byte(yamlScene), FormatYAML)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	tm, err := Parse([]byte(tomlScene), FormatTOML)
	if err != nil {
		t.Fatalf("toml: %v", err)
	}
	if !reflect.DeepEqual(y, tm) {
		t.Errorf("documents differ:\nyaml: %+v\ntoml: %+v", y, tm)
	}
	if len(y.Shapes) != 3 || len(y.Shapes[2].Children) != 2 {
		t.Fatalf("unexpected shape tree: %+v", y.Shapes)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte("shapes:\n  - kind: circle\n    colour: red\n"), FormatYAML); err == nil {
		t.Error("yaml: expected error for unknown field")
	}
	if _, err := Parse([]byte("[[shapes]]\nkind = \"circle\"\ncolour = \"red\"\n"), FormatTOML); err == nil {
		t.Error("toml: expected error for unknown field")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"scene.yaml", FormatYAML, false},
		{"scene.YML", FormatYAML, false},
		{"dir/scene.toml", FormatTOML, false},
		{"scene.json", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.err {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("err = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(tomlScene), 0o600); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Surface.Width != 200 || doc.Surface.Height != 100 {
		t.Errorf("surface size = %dx%d, want 200x100", doc.Surface.Width, doc.Surface.Height)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
		err  bool
	}{
		{"#ff0000", gg.RGBA{R: 1, A: 1}, false},
		{"00f", gg.RGBA{B: 1, A: 1}, false},
		{"#00000000", gg.RGBA{}, false},
		{"none", gg.Transparent, false},
		{"#12345", gg.RGBA{}, true},
		{"#gggggg", gg.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c Color
			err := c.UnmarshalText([]byte(tt.in))
			if tt.err {
				if err == nil {
					t.Errorf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if c.RGBA() != tt.want {
				t.Errorf("color = %+v, want %+v", c.RGBA(), tt.want)
			}
		})
	}
}

func TestDrawableUnknownKind(t *testing.T) {
	s := Shape{Kind: "star"}
	if _, err := s.Drawable(two.Factory{}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}

	g := Shape{Kind: "group", Children: []Shape{{Kind: "circle", Radius: 1}, {Kind: "blob"}}}
	if _, err := g.Drawable(two.Factory{}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("nested err = %v, want ErrUnknownKind", err)
	}
}

func TestDrawableStyles(t *testing.T) {
	red := Color(gg.RGBA{R: 1, A: 1})
	weight := 4.0
	z := -3
	s := Shape{
		Kind: "ellipse", X: 10, Y: 20, Width: 5, Height: 3,
		Fill: &red, Weight: &weight, Rotation: 0.5, Scale: []float64{2, 3},
		Z: &z, Hidden: true, Trim: []float64{0.25, 0.75},
	}
	d, err := s.Drawable(two.Factory{Resolution: 8})
	if err != nil {
		t.Fatal(err)
	}
	e, ok := d.(*two.Ellipse)
	if !ok {
		t.Fatalf("got %T, want *two.Ellipse", d)
	}
	if e.Fill() != red.RGBA() {
		t.Errorf("fill = %+v", e.Fill())
	}
	if e.StrokeWeight() != 4 {
		t.Errorf("weight = %v", e.StrokeWeight())
	}
	if e.Rotation() != 0.5 || e.Scale() != two.V(2, 3) {
		t.Errorf("rotation/scale = %v/%v", e.Rotation(), e.Scale())
	}
	if e.ZIndex() != -3 || e.Visible() {
		t.Errorf("z/visible = %v/%v", e.ZIndex(), e.Visible())
	}
	if e.Beginning() != 0.25 || e.Ending() != 0.75 {
		t.Errorf("trim = %v..%v", e.Beginning(), e.Ending())
	}
	if e.Len() != 9 {
		t.Errorf("len = %d, want 8 points plus the closing vertex", e.Len())
	}
	if tr := e.Translation(); tr.X != 10 || tr.Y != 20 {
		t.Errorf("translation = %v", tr)
	}
}

func TestDrawableInvalid(t *testing.T) {
	red := Color(gg.RGBA{R: 1, A: 1})
	tests := []struct {
		name  string
		shape Shape
	}{
		{"fill on line", Shape{Kind: "line", X2: 10, Fill: &red}},
		{"trim on group", Shape{Kind: "group", Trim: []float64{0, 1}}},
		{"trim arity", Shape{Kind: "line", X2: 10, Trim: []float64{0.5}}},
		{"scale arity", Shape{Kind: "circle", Radius: 1, Scale: []float64{1, 2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.shape.Drawable(two.Factory{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBuild(t *testing.T) {
	doc, err := Parse([]byte(yamlScene), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	s, err := two.NewSurface(nil, doc.Options()...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Dispose() })

	if s.Type() != backend.Raster || s.Width() != 200 || s.Height() != 100 {
		t.Errorf("surface = %v %dx%d", s.Type(), s.Width(), s.Height())
	}
	if s.Playing() {
		t.Error("autoplay: false should leave the surface paused")
	}

	got, err := doc.Build(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || len(s.Children()) != 3 {
		t.Fatalf("built %d, surface has %d", len(got), len(s.Children()))
	}
	g, ok := got[2].(*two.Group)
	if !ok {
		t.Fatalf("third shape is %T", got[2])
	}
	if g.Len() != 2 || g.ZIndex() != 7 {
		t.Errorf("group len=%d z=%d", g.Len(), g.ZIndex())
	}

	if err := s.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	img := s.Image()
	r, gr, b, _ := img.At(50, 50).RGBA()
	if r>>8 != 255 || gr>>8 != 0 || b>>8 != 0 {
		t.Errorf("pixel at rectangle center = %d,%d,%d", r>>8, gr>>8, b>>8)
	}
}

func TestBuildFailureAddsNothing(t *testing.T) {
	s, err := two.NewSurface(nil, two.WithType(backend.Raster), two.WithSize(10, 10), two.WithAutoplay(false))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Dispose() })

	doc := &Document{Shapes: []Shape{{Kind: "circle", Radius: 2}, {Kind: "hexagon"}}}
	if _, err := doc.Build(s); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
	if n := len(s.Children()); n != 0 {
		t.Errorf("surface has %d children after failed build", n)
	}
}
