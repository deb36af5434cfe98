package scene2d

// Kind identifies the concrete variant of a Shape.
type Kind int

const (
	// KindDot is a single styled point.
	KindDot Kind = iota
	// KindLine is a straight segment.
	KindLine
	// KindArrow is a segment with an arrow head at its end.
	KindArrow
	// KindPolyline is a Path-backed shape, open or closed.
	KindPolyline
	// KindEllipse is an ellipse given by center and semi-axes.
	KindEllipse
	// KindBezier is a chain of cubic Bezier segments.
	KindBezier
	// KindText is a text anchor with content and alignment.
	KindText
	// KindList is an ordered composite of shapes.
	KindList
	// KindGroup is a composite with an optional clipping path.
	KindGroup
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindDot:
		return "Dot"
	case KindLine:
		return "Line"
	case KindArrow:
		return "Arrow"
	case KindPolyline:
		return "Polyline"
	case KindEllipse:
		return "Ellipse"
	case KindBezier:
		return "Bezier"
	case KindText:
		return "Text"
	case KindList:
		return "List"
	case KindGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// BoundsMode selects how stroke width enters bounding-box computation.
type BoundsMode int

const (
	// BoundsGeometry ignores stroke width; the box covers the bare
	// geometry.
	BoundsGeometry BoundsMode = iota
	// BoundsStroke grows the box by half the stroke width on every
	// side, covering the rendered extent of the stroke.
	BoundsStroke
)

// Shape is a geometric entity of the scene tree.
//
// Every shape carries a style, computes its bounding box under a
// BoundsMode, applies affine transforms in place, produces independent
// deep copies, and accepts a traversal visitor. Containers own deep
// clones of inserted shapes, so no shape instance is ever shared
// between two owners.
type Shape interface {
	// Kind returns the variant tag of the shape.
	Kind() Kind

	// Style returns the shape's style for reading or mutation.
	Style() *Style

	// Bounds returns the bounding box of the shape under the given
	// width-interpretation mode. Shapes without geometry return the
	// null rect.
	Bounds(mode BoundsMode) Rect

	// Transform applies an affine transform to the shape in place.
	Transform(m Matrix)

	// Clone returns an independent deep copy of the shape.
	Clone() Shape

	// Accept invokes the visitor callback for the shape's variant.
	// Composite shapes forward their children in paint order.
	Accept(v Visitor) error
}

// Visitor receives scene shapes during traversal. Each callback gets
// read access to the variant's geometry and style. Composites forward
// children in paint order; a Group is visited before its children so
// the visitor sees the clipping path first.
type Visitor interface {
	VisitDot(*DotShape) error
	VisitLine(*LineShape) error
	VisitArrow(*ArrowShape) error
	VisitPolyline(*PolylineShape) error
	VisitEllipse(*EllipseShape) error
	VisitBezier(*BezierShape) error
	VisitText(*TextShape) error
	VisitList(*ShapeList) error
	VisitGroup(*Group) error
}

// Render traverses a deep copy of the scene mapped through the device
// transform. The original shape tree is never mutated, so the same
// scene can be rendered to multiple targets.
func Render(s Shape, device Matrix, v Visitor) error {
	c := s.Clone()
	c.Transform(device)
	return c.Accept(v)
}

// strokeMargin returns the half-width margin implied by the mode.
func strokeMargin(mode BoundsMode, style *Style) float64 {
	if mode == BoundsStroke {
		return style.Width / 2
	}
	return 0
}

// growForMode grows a non-null rect by the mode's stroke margin.
func growForMode(r Rect, mode BoundsMode, style *Style) Rect {
	if r.IsNull() {
		return r
	}
	if m := strokeMargin(mode, style); m > 0 {
		return r.Grow(m)
	}
	return r
}
