package scene2d

// Direction selects on which side Append places new content.
type Direction int

const (
	// DirRight places content to the right of the existing box.
	DirRight Direction = iota
	// DirLeft places content to the left.
	DirLeft
	// DirAbove places content above.
	DirAbove
	// DirBelow places content below.
	DirBelow
)

// Alignment selects how Append aligns content along the edge
// perpendicular to the direction. In the y-up convention Min is the
// bottom or left edge, Max the top or right edge.
type Alignment int

const (
	// AlignMin aligns the minimum edges.
	AlignMin Alignment = iota
	// AlignMid aligns the centers.
	AlignMid
	// AlignMax aligns the maximum edges.
	AlignMax
)

// ShapeList is an ordered composite of owned shapes. Insertion order
// defines back-to-front paint order: later insertion paints on top.
// Add stores a deep clone, so mutating the caller's original after
// insertion never affects the stored copy.
type ShapeList struct {
	shapes []Shape
	style  Style
}

// NewShapeList creates an empty list.
func NewShapeList(style ...Style) *ShapeList {
	return &ShapeList{style: pickStyle(style)}
}

// Mix creates a list holding clones of the given shapes, in order.
func Mix(shapes ...Shape) *ShapeList {
	l := NewShapeList()
	for _, s := range shapes {
		l.Add(s)
	}
	return l
}

// Kind returns KindList.
func (l *ShapeList) Kind() Kind { return KindList }

// Style returns the list's own style, consulted by combinators that
// synthesize shapes into the list.
func (l *ShapeList) Style() *Style { return &l.style }

// Len returns the number of owned shapes.
func (l *ShapeList) Len() int { return len(l.shapes) }

// At returns the i-th shape in paint order. The returned shape is
// owned by the list.
func (l *ShapeList) At(i int) Shape { return l.shapes[i] }

// Add appends a deep clone of s to the top of the paint order.
func (l *ShapeList) Add(s Shape) {
	l.shapes = append(l.shapes, s.Clone())
}

// Clear removes and releases all owned shapes.
func (l *ShapeList) Clear() {
	l.shapes = nil
}

// Last returns the most recently inserted shape of the given kind.
// It returns an error if the list holds no shape of that kind.
func (l *ShapeList) Last(kind Kind) (Shape, error) {
	for i := len(l.shapes) - 1; i >= 0; i-- {
		if l.shapes[i].Kind() == kind {
			return l.shapes[i], nil
		}
	}
	return nil, errorf("no shape of kind %s in list", kind)
}

// Bounds returns the union of the children's boxes.
func (l *ShapeList) Bounds(mode BoundsMode) Rect {
	r := NullRect()
	for _, s := range l.shapes {
		r = r.Union(s.Bounds(mode))
	}
	return r
}

// Transform applies m to every child in place.
func (l *ShapeList) Transform(m Matrix) {
	for _, s := range l.shapes {
		s.Transform(m)
	}
}

// Clone returns an independent deep copy of the list.
func (l *ShapeList) Clone() Shape {
	out := &ShapeList{
		shapes: make([]Shape, len(l.shapes)),
		style:  l.style.Clone(),
	}
	for i, s := range l.shapes {
		out.shapes[i] = s.Clone()
	}
	return out
}

// Accept visits the list, then its children in paint order.
func (l *ShapeList) Accept(v Visitor) error {
	if err := v.VisitList(l); err != nil {
		return err
	}
	return l.acceptChildren(v)
}

func (l *ShapeList) acceptChildren(v Visitor) error {
	for _, s := range l.shapes {
		if err := s.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

// Append adds a clone of content placed against the current content's
// bounding box: the clone is translated so its box abuts the existing
// box on the given side, offset by margin, aligned along the
// perpendicular axis. Boxes are compared in geometry mode; stroke
// overhang is a rendering concern.
//
// Appending to an empty list adds the content untranslated.
func (l *ShapeList) Append(content Shape, dir Direction, align Alignment, margin float64) {
	c := content.Clone()
	have := l.Bounds(BoundsGeometry)
	add := c.Bounds(BoundsGeometry)
	if have.IsNull() || add.IsNull() {
		l.shapes = append(l.shapes, c)
		return
	}

	var dx, dy float64
	switch dir {
	case DirRight:
		dx = have.Right() + margin - add.Left
		dy = alignOffset(align, have.Bottom(), have.Top, add.Bottom(), add.Top)
	case DirLeft:
		dx = have.Left - margin - add.Right()
		dy = alignOffset(align, have.Bottom(), have.Top, add.Bottom(), add.Top)
	case DirAbove:
		dy = have.Top + margin - add.Bottom()
		dx = alignOffset(align, have.Left, have.Right(), add.Left, add.Right())
	case DirBelow:
		dy = have.Bottom() - margin - add.Top
		dx = alignOffset(align, have.Left, have.Right(), add.Left, add.Right())
	}

	c.Transform(Translate(dx, dy))
	l.shapes = append(l.shapes, c)
}

// alignOffset returns the translation aligning the [addMin, addMax]
// interval to the [haveMin, haveMax] interval per the alignment rule.
func alignOffset(align Alignment, haveMin, haveMax, addMin, addMax float64) float64 {
	switch align {
	case AlignMin:
		return haveMin - addMin
	case AlignMax:
		return haveMax - addMax
	default:
		return (haveMin+haveMax)/2 - (addMin+addMax)/2
	}
}

// AddDuplicates inserts count transformed clones of shape. Each
// duplicate is derived from the previous one: translated by (dx, dy),
// scaled by (scaleStepX, scaleStepY) and rotated by rotStep about its
// own box center before translation. Factors therefore accumulate:
// with scaleStepX 0.9 the duplicates carry 0.9, 0.81, 0.729, ... of
// the original size, and rotations accumulate likewise.
func (l *ShapeList) AddDuplicates(shape Shape, count int, dx, dy, scaleStepX, scaleStepY, rotStep float64) {
	prev := shape
	for i := 0; i < count; i++ {
		cur := prev.Clone()
		center := cur.Bounds(BoundsGeometry).Center()
		cur.Transform(ScaleAbout(scaleStepX, scaleStepY, center))
		cur.Transform(RotateAbout(rotStep, center))
		cur.Transform(Translate(dx, dy))
		l.shapes = append(l.shapes, cur)
		prev = cur
	}
}

// Tile fills the list with a cols x rows grid of clones of shape,
// spaced by margin, built entirely from the Append primitive: each row
// grows rightward, rows stack below each other with left edges
// aligned.
func (l *ShapeList) Tile(shape Shape, cols, rows int, margin float64) {
	for r := 0; r < rows; r++ {
		row := NewShapeList()
		for c := 0; c < cols; c++ {
			row.Append(shape, DirRight, AlignMin, margin)
		}
		l.Append(row, DirBelow, AlignMin, margin)
	}
}
