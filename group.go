package scene2d

// Group is a ShapeList with an optional clipping path. Transforms
// applied to the group propagate to both the children and the clip, so
// the clip stays registered with the content. Clipping affects only
// rendering; it never enters geometry or bounding-box computation.
type Group struct {
	ShapeList
	clip *Path
}

// NewGroup creates an empty group without a clip.
func NewGroup(style ...Style) *Group {
	return &Group{ShapeList: *NewShapeList(style...)}
}

// Kind returns KindGroup.
func (g *Group) Kind() Kind { return KindGroup }

// SetClip attaches a deep copy of the given path as the group's clip.
// The path is forced closed. Pass nil to remove the clip.
func (g *Group) SetClip(p *Path) {
	if p == nil {
		g.clip = nil
		return
	}
	c := p.Clone()
	c.closed = true
	g.clip = c
}

// Clip returns the group's clipping path, or nil. The path is owned by
// the group.
func (g *Group) Clip() *Path {
	return g.clip
}

// Transform applies m to all children and to the clipping path.
func (g *Group) Transform(m Matrix) {
	g.ShapeList.Transform(m)
	if g.clip != nil {
		g.clip.Transform(m)
	}
}

// Clone returns an independent deep copy of the group.
func (g *Group) Clone() Shape {
	out := &Group{ShapeList: *(g.ShapeList.Clone().(*ShapeList))}
	if g.clip != nil {
		out.clip = g.clip.Clone()
	}
	return out
}

// Accept visits the group, then its children in paint order. The
// visitor reads the clipping path from the group before any child is
// delivered.
func (g *Group) Accept(v Visitor) error {
	if err := v.VisitGroup(g); err != nil {
		return err
	}
	return g.acceptChildren(v)
}
