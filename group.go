package two

import "github.com/gogpu/gg"

// Group holds child shapes and groups under one transform. It owns no
// vertices; its bounds come from its children.
type Group struct {
	node
	children []Drawable
}

var _ Drawable = (*Group)(nil)

// NewGroup creates a group holding children and centers it on their
// bounding box.
func NewGroup(children ...Drawable) *Group {
	g := &Group{}
	g.node.init(g)
	g.Add(children...)
	g.Center()
	return g
}

// Add appends children, detaching each from its previous parent. Each
// child's translation is made relative to the group's translation.
func (g *Group) Add(children ...Drawable) {
	for _, c := range children {
		if c == nil || c == Drawable(g) {
			continue
		}
		n := c.base()
		n.xf.Translation = n.xf.Translation.Sub(g.xf.Translation)
		attach(g, c)
	}
}

func (g *Group) addChild(d Drawable) { g.children = append(g.children, d) }

func (g *Group) removeChild(d Drawable) { g.children = removeFrom(g.children, d) }

// Children returns the group's children in insertion order.
func (g *Group) Children() []Drawable {
	return append([]Drawable(nil), g.children...)
}

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// BoundingBox returns the union of the children's extents in the group's
// own space. Shapes contribute their local bounds offset by their
// translation, nested groups their bounding box offset by theirs. Rotation
// and scale are not taken into account. An empty group yields the zero
// Rect.
func (g *Group) BoundingBox() Rect {
	r, _ := g.childBounds()
	return r
}

func (g *Group) childBounds() (Rect, bool) {
	var (
		out Rect
		found bool
	)
	for _, c := range g.children {
		r, ok := c.bounds()
		if !ok {
			continue
		}
		if !found {
			out, found = r, true
			continue
		}
		out = out.Union(r)
	}
	return out, found
}

func (g *Group) bounds() (Rect, bool) {
	r, ok := g.childBounds()
	if !ok {
		return Rect{}, false
	}
	return r.Offset(g.xf.Translation), true
}

// Center moves the group's origin to the centroid of its bounding box,
// shifting every child by the opposite amount so nothing moves on screen.
// Calling it again has no further effect.
func (g *Group) Center() {
	r, ok := g.childBounds()
	if !ok {
		return
	}
	c := r.Centroid()
	for _, child := range g.children {
		n := child.base()
		n.xf.Translation = n.xf.Translation.Sub(c)
	}
	g.xf.Translation = g.xf.Translation.Add(c)
}

// SetZIndex sets the group's depth and gives child i the depth z - i.
func (g *Group) SetZIndex(z int) {
	g.z = z
	for i, c := range g.children {
		c.SetZIndex(z - i)
	}
}

// each calls fn for every leaf below g, descending into nested groups.
func (g *Group) each(fn func(d Drawable)) {
	for _, c := range g.children {
		if sub, ok := c.(*Group); ok {
			sub.each(fn)
			continue
		}
		fn(c)
	}
}

// SetFill sets the fill of every fillable shape in the group.
func (g *Group) SetFill(c gg.RGBA) {
	g.each(func(d Drawable) {
		if f, ok := d.(Fillable); ok {
			f.SetFill(c)
		}
	})
}

// SetFillRGB sets an opaque fill on every fillable shape in the group.
func (g *Group) SetFillRGB(r, gr, b float64) { g.SetFill(gg.RGB(r, gr, b)) }

// NoFill hides the fill of every shape in the group.
func (g *Group) NoFill() { g.SetFill(gg.Transparent) }

// SetStroke sets the outline color of every shape in the group.
func (g *Group) SetStroke(c gg.RGBA) {
	g.each(func(d Drawable) {
		if s, ok := d.(Strokeable); ok {
			s.SetStroke(c)
		}
	})
}

// SetStrokeRGB sets an opaque outline color on every shape in the group.
func (g *Group) SetStrokeRGB(r, gr, b float64) { g.SetStroke(gg.RGB(r, gr, b)) }

// SetStrokeWeight sets the line width of every shape in the group.
func (g *Group) SetStrokeWeight(w float64) {
	g.each(func(d Drawable) {
		if s, ok := d.(Strokeable); ok {
			s.SetStrokeWeight(w)
		}
	})
}

// NoStroke hides the outline of every shape in the group.
func (g *Group) NoStroke() { g.SetStroke(gg.Transparent) }

func (g *Group) collect(c *collector, parent gg.Matrix) {
	if g.hidden {
		return
	}
	m := parent.Multiply(g.xf.Matrix())
	for _, child := range g.children {
		child.collect(c, m)
	}
}
