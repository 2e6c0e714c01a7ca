package two

import "github.com/gogpu/gg"

// Drawable is anything that can be added to a Surface or Group: every
// shape kind and Group itself.
type Drawable interface {
	Translation() Vector
	SetTranslation(x, y float64)
	Rotation() float64
	SetRotation(radians float64)
	Scale() Vector
	SetScale(s float64)
	SetScaleXY(sx, sy float64)
	ZIndex() int
	SetZIndex(z int)
	Visible() bool
	SetVisible(visible bool)

	// Remove detaches the drawable from its surface or group.
	Remove()

	base() *node

	// bounds returns the extents in parent space. ok is false when there
	// is nothing to measure.
	bounds() (r Rect, ok bool)

	collect(c *collector, parent gg.Matrix)
}

// container is a Surface or Group.
type container interface {
	addChild(d Drawable)
	removeChild(d Drawable)
}

// node holds the state shared by shapes and groups.
type node struct {
	self   Drawable
	parent container
	xf     Transform
	z      int
	hidden bool
}

func (n *node) init(self Drawable) {
	n.self = self
	n.xf = IdentityTransform()
	n.z = nextRenderDepth()
}

func (n *node) base() *node { return n }

// Translation returns the position inside the parent.
func (n *node) Translation() Vector { return n.xf.Translation }

// SetTranslation moves the drawable.
func (n *node) SetTranslation(x, y float64) {
	n.xf.Translation.X = x
	n.xf.Translation.Y = y
}

// Rotation returns the rotation in radians.
func (n *node) Rotation() float64 { return n.xf.Rotation }

// SetRotation sets the rotation in radians.
func (n *node) SetRotation(radians float64) { n.xf.Rotation = radians }

// Scale returns the X and Y scale factors.
func (n *node) Scale() Vector { return n.xf.Scale }

// SetScale sets a uniform scale.
func (n *node) SetScale(s float64) { n.SetScaleXY(s, s) }

// SetScaleXY sets independent X and Y scale factors.
func (n *node) SetScaleXY(sx, sy float64) {
	n.xf.Scale.X = sx
	n.xf.Scale.Y = sy
}

// Transform returns the full placement transform.
func (n *node) Transform() Transform { return n.xf }

// ZIndex returns the render depth. Greater depths are drawn first.
func (n *node) ZIndex() int { return n.z }

// SetZIndex sets the render depth.
func (n *node) SetZIndex(z int) { n.z = z }

// Visible reports whether the drawable is rendered.
func (n *node) Visible() bool { return !n.hidden }

// SetVisible shows or hides the drawable and, for groups, its children.
func (n *node) SetVisible(visible bool) { n.hidden = !visible }

// Remove detaches the drawable from its parent. It is a no-op when the
// drawable has no parent.
func (n *node) Remove() {
	if n.parent == nil {
		return
	}
	n.parent.removeChild(n.self)
	n.parent = nil
}

// attach moves d under c, detaching it from any previous parent.
func attach(c container, d Drawable) {
	d.Remove()
	c.addChild(d)
	d.base().parent = c
}

// removeFrom deletes d from children, preserving order.
func removeFrom(children []Drawable, d Drawable) []Drawable {
	for i, c := range children {
		if c == d {
			copy(children[i:], children[i+1:])
			children[len(children)-1] = nil
			return children[:len(children)-1]
		}
	}
	return children
}
