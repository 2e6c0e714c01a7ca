package two

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/two/backend"
)

// Shape is the vertex store embedded by every leaf kind.
//
// Vertices are relative to the shape's translation. Closed shapes keep
// their first vertex repeated at the end.
type Shape struct {
	node

	vertices []Vector
	closed   bool
	local    Rect
	morphs   []*Morph

	// Per-frame scratch, reused to avoid allocating on every render.
	blended   []Vector
	outline   []Vector
	points    []gg.Point
	strokePts []gg.Point
}

func (s *Shape) initShape(self Drawable, vs []Vector, closed bool) {
	s.node.init(self)
	s.vertices = append([]Vector(nil), vs...)
	s.closed = closed
	s.local = boundsOf(s.vertices)
}

// Len returns the number of vertices, including the closing vertex.
func (s *Shape) Len() int { return len(s.vertices) }

// Closed reports whether the shape is a closed outline.
func (s *Shape) Closed() bool { return s.closed }

// Vertices returns a copy of the vertices.
func (s *Shape) Vertices() []Vector {
	return append([]Vector(nil), s.vertices...)
}

// VerticesRef returns the live vertex slice. Call Update after editing it
// so the cached bounds follow.
func (s *Shape) VerticesRef() []Vector {
	return s.vertices
}

// SetVertices writes vs over the existing vertices, slot by slot. A
// longer vs grows the shape; a shorter one leaves the trailing vertices
// as they were.
func (s *Shape) SetVertices(vs []Vector) {
	for i, v := range vs {
		if i < len(s.vertices) {
			s.vertices[i] = v
		} else {
			s.vertices = append(s.vertices, v)
		}
	}
	s.Update()
}

// Update refreshes the cached local bounds after in-place vertex edits.
func (s *Shape) Update() {
	s.local = boundsOf(s.vertices)
}

// LocalBounds returns the bounding box of the vertices in the shape's own
// space, as of the last SetVertices or Update.
func (s *Shape) LocalBounds() Rect { return s.local }

func (s *Shape) bounds() (Rect, bool) {
	if len(s.vertices) == 0 {
		return Rect{}, false
	}
	return s.local.Offset(s.xf.Translation), true
}

// item builds the geometry part of a draw item and returns the vertices
// it was built from, with morphs applied.
func (s *Shape) item(parent gg.Matrix) (backend.Item, []Vector) {
	vs := s.blend()
	s.points = toPoints(s.points, vs)
	return backend.Item{
		Points:    s.points,
		Closed:    s.closed,
		Transform: parent.Multiply(s.xf.Matrix()),
	}, vs
}

// applyStroke fills in the outline part of a draw item, trimming the
// outline when st has a trim window.
func (s *Shape) applyStroke(it *backend.Item, st *StrokeStyle, vs []Vector) {
	if !st.strokeVisible() {
		return
	}
	it.HasStroke = true
	it.Stroke = st.stroke
	it.StrokeWidth = st.weight
	if st.trimmed() {
		s.outline = Trim(s.outline, vs, st.beginning, st.ending)
		s.strokePts = toPoints(s.strokePts, s.outline)
		it.StrokePoints = s.strokePts
	}
}

// reshape replaces the vertices with freshly generated raw points,
// closing them when the shape is closed. Vertices beyond the generated
// outline, such as ones appended through SetVertices, are dropped.
func (s *Shape) reshape(raw []Vector) {
	if s.closed {
		raw = closePath(raw)
	}
	s.vertices = append(s.vertices[:0], raw...)
	s.Update()
}

// closePath appends the first vertex when it differs from the last.
func closePath(vs []Vector) []Vector {
	if len(vs) > 0 && !vs[0].Equal(vs[len(vs)-1]) {
		vs = append(vs, vs[0])
	}
	return vs
}
