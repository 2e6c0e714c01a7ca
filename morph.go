package two

import (
	"strconv"
	"sync/atomic"
)

// morphSeq numbers unnamed morph targets across the process.
var morphSeq atomic.Int64

// Morph is an alternate vertex list blended into its shape by influence.
type Morph struct {
	owner     *Shape
	name      string
	index     int
	vertices  []Vector
	influence float64
}

// AddMorph attaches a morph target. vertices must have exactly as many
// entries as the shape, closing vertex included; otherwise the returned
// error matches ErrVertexCountMismatch. An empty name is replaced by
// "morph-<n>". The target starts with zero influence.
func (s *Shape) AddMorph(vertices []Vector, name string) (*Morph, error) {
	if len(vertices) != len(s.vertices) {
		return nil, &VertexCountError{Name: name, Want: len(s.vertices), Got: len(vertices)}
	}
	if name == "" {
		name = "morph-" + strconv.FormatInt(morphSeq.Add(1)-1, 10)
	}
	m := &Morph{
		owner:    s,
		name:     name,
		index:    len(s.morphs),
		vertices: append([]Vector(nil), vertices...),
	}
	s.morphs = append(s.morphs, m)
	return m, nil
}

// Morph returns the target called name, or nil.
func (s *Shape) Morph(name string) *Morph {
	for _, m := range s.morphs {
		if m.name == name {
			return m
		}
	}
	return nil
}

// Morphs returns the shape's morph targets in the order they were added.
func (s *Shape) Morphs() []*Morph {
	return append([]*Morph(nil), s.morphs...)
}

// MorphedVertices returns a copy of the vertices with every morph applied
// at its current influence.
func (s *Shape) MorphedVertices() []Vector {
	return append([]Vector(nil), s.blend()...)
}

// blend returns base + Σ wᵢ (targetᵢ - base). The result aliases the
// vertices when no target has influence and a scratch buffer otherwise.
// Targets whose length no longer matches the shape are skipped.
func (s *Shape) blend() []Vector {
	n := len(s.vertices)
	active := false
	for _, m := range s.morphs {
		if m.influence > 0 && len(m.vertices) == n {
			active = true
			break
		}
	}
	if !active {
		return s.vertices
	}

	s.blended = append(s.blended[:0], s.vertices...)
	for _, m := range s.morphs {
		if m.influence == 0 || len(m.vertices) != n {
			continue
		}
		for i, t := range m.vertices {
			s.blended[i] = s.blended[i].Add(t.Sub(s.vertices[i]).Mul(m.influence))
		}
	}
	return s.blended
}

// Name returns the target's name.
func (m *Morph) Name() string { return m.name }

// Index returns the target's position among its shape's morphs.
func (m *Morph) Index() int { return m.index }

// Vertices returns a copy of the target vertices.
func (m *Morph) Vertices() []Vector {
	return append([]Vector(nil), m.vertices...)
}

// SetVertices replaces the target vertices. The length must match the
// shape's vertex count.
func (m *Morph) SetVertices(vs []Vector) error {
	if len(vs) != len(m.owner.vertices) {
		return &VertexCountError{Name: m.name, Want: len(m.owner.vertices), Got: len(vs)}
	}
	m.vertices = append(m.vertices[:0], vs...)
	return nil
}

// Influence returns the blend weight in [0, 1].
func (m *Morph) Influence() float64 { return m.influence }

// SetInfluence sets the blend weight, clamped to [0, 1].
func (m *Morph) SetInfluence(w float64) {
	m.influence = clamp01(w)
}
