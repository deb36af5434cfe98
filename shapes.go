package scene2d

import "math"

// Concrete shape variants. Constructors take the style as an optional
// trailing argument; when absent the process-wide default style is
// consulted, matching single-threaded scene construction.

// pickStyle resolves the optional constructor style argument.
func pickStyle(style []Style) Style {
	if len(style) > 0 {
		return style[0].Clone()
	}
	return DefaultStyle()
}

// -------------------------------------------------------------------
// Dot
// -------------------------------------------------------------------

// DotShape is a single styled point, rendered as a disc of the stroke
// width.
type DotShape struct {
	Center Point
	style  Style
}

// NewDot creates a dot at the given position.
func NewDot(center Point, style ...Style) *DotShape {
	return &DotShape{Center: center, style: pickStyle(style)}
}

// Kind returns KindDot.
func (d *DotShape) Kind() Kind { return KindDot }

// Style returns the dot's style.
func (d *DotShape) Style() *Style { return &d.style }

// Bounds returns the dot's bounding box: a degenerate rect at the
// center, grown by half the width in stroke mode.
func (d *DotShape) Bounds(mode BoundsMode) Rect {
	return growForMode(NullRect().GrowToContain(d.Center), mode, &d.style)
}

// Transform maps the center through m.
func (d *DotShape) Transform(m Matrix) {
	d.Center = m.TransformPoint(d.Center)
}

// Clone returns an independent copy.
func (d *DotShape) Clone() Shape {
	out := *d
	out.style = d.style.Clone()
	return &out
}

// Accept visits the dot.
func (d *DotShape) Accept(v Visitor) error { return v.VisitDot(d) }

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// LineShape is a straight segment.
type LineShape struct {
	Seg   Line
	style Style
}

// NewLine creates a segment from p0 to p1.
func NewLine(p0, p1 Point, style ...Style) *LineShape {
	return &LineShape{Seg: Line{P0: p0, P1: p1}, style: pickStyle(style)}
}

// Kind returns KindLine.
func (l *LineShape) Kind() Kind { return KindLine }

// Style returns the segment's style.
func (l *LineShape) Style() *Style { return &l.style }

// Bounds returns the segment's bounding box.
func (l *LineShape) Bounds(mode BoundsMode) Rect {
	return growForMode(l.Seg.BoundingBox(), mode, &l.style)
}

// Transform maps both endpoints through m.
func (l *LineShape) Transform(m Matrix) {
	l.Seg.P0 = m.TransformPoint(l.Seg.P0)
	l.Seg.P1 = m.TransformPoint(l.Seg.P1)
}

// Clone returns an independent copy.
func (l *LineShape) Clone() Shape {
	out := *l
	out.style = l.style.Clone()
	return &out
}

// Accept visits the segment.
func (l *LineShape) Accept(v Visitor) error { return v.VisitLine(l) }

// -------------------------------------------------------------------
// Arrow
// -------------------------------------------------------------------

// ArrowShape is a segment with an arrow head at P1.
// HeadLength is the length of each head wing; HeadAngle is the half
// opening angle of the head in radians.
type ArrowShape struct {
	Seg        Line
	HeadLength float64
	HeadAngle  float64
	style      Style
}

// NewArrow creates an arrow from p0 to p1 with default head
// proportions (wing length 4x stroke width, half angle 30 degrees).
func NewArrow(p0, p1 Point, style ...Style) *ArrowShape {
	s := pickStyle(style)
	return &ArrowShape{
		Seg:        Line{P0: p0, P1: p1},
		HeadLength: 4 * s.Width,
		HeadAngle:  math.Pi / 6,
		style:      s,
	}
}

// Kind returns KindArrow.
func (a *ArrowShape) Kind() Kind { return KindArrow }

// Style returns the arrow's style.
func (a *ArrowShape) Style() *Style { return &a.style }

// HeadPoints returns the two wing endpoints of the arrow head.
// A zero-length arrow has no direction and returns the tip twice.
func (a *ArrowShape) HeadPoints() (Point, Point) {
	dir, ok := a.Seg.Tangent().Normalized()
	if !ok {
		return a.Seg.P1, a.Seg.P1
	}
	back := dir.Neg().Mul(a.HeadLength)
	left := Point{X: back.X, Y: back.Y}.Rotate(a.HeadAngle)
	right := Point{X: back.X, Y: back.Y}.Rotate(-a.HeadAngle)
	return a.Seg.P1.Add(left), a.Seg.P1.Add(right)
}

// Bounds returns the bounding box including the head wings.
func (a *ArrowShape) Bounds(mode BoundsMode) Rect {
	r := a.Seg.BoundingBox()
	w1, w2 := a.HeadPoints()
	r = r.GrowToContain(w1).GrowToContain(w2)
	return growForMode(r, mode, &a.style)
}

// Transform maps the endpoints through m and rescales the head with
// the average axis scale so the head stays proportioned.
func (a *ArrowShape) Transform(m Matrix) {
	a.Seg.P0 = m.TransformPoint(a.Seg.P0)
	a.Seg.P1 = m.TransformPoint(a.Seg.P1)
	sx := Vec2{X: m.A, Y: m.D}.Length()
	sy := Vec2{X: m.B, Y: m.E}.Length()
	a.HeadLength *= (sx + sy) / 2
}

// Clone returns an independent copy.
func (a *ArrowShape) Clone() Shape {
	out := *a
	out.style = a.style.Clone()
	return &out
}

// Accept visits the arrow.
func (a *ArrowShape) Accept(v Visitor) error { return v.VisitArrow(a) }

// -------------------------------------------------------------------
// Polyline
// -------------------------------------------------------------------

// PolylineShape is a Path-backed shape: an open polyline or a closed
// polygon, possibly with holes.
type PolylineShape struct {
	path  *Path
	style Style
}

// NewPolyline creates an open polyline through the given vertices.
func NewPolyline(points []Point, style ...Style) *PolylineShape {
	return &PolylineShape{path: NewPath(points...), style: pickStyle(style)}
}

// NewPolygon creates a closed polygon through the given vertices.
func NewPolygon(points []Point, style ...Style) *PolylineShape {
	return &PolylineShape{path: NewClosedPath(points...), style: pickStyle(style)}
}

// NewPathShape wraps a deep copy of an existing path.
func NewPathShape(p *Path, style ...Style) *PolylineShape {
	return &PolylineShape{path: p.Clone(), style: pickStyle(style)}
}

// Kind returns KindPolyline.
func (p *PolylineShape) Kind() Kind { return KindPolyline }

// Style returns the polyline's style.
func (p *PolylineShape) Style() *Style { return &p.style }

// Path returns the underlying path. The path is owned by the shape;
// mutating it mutates the shape.
func (p *PolylineShape) Path() *Path { return p.path }

// Bounds returns the path's bounding box.
func (p *PolylineShape) Bounds(mode BoundsMode) Rect {
	return growForMode(p.path.Bounds(), mode, &p.style)
}

// Transform maps all vertices, including hole vertices, through m.
func (p *PolylineShape) Transform(m Matrix) {
	p.path.Transform(m)
}

// Clone returns an independent copy.
func (p *PolylineShape) Clone() Shape {
	return &PolylineShape{path: p.path.Clone(), style: p.style.Clone()}
}

// Accept visits the polyline.
func (p *PolylineShape) Accept(v Visitor) error { return v.VisitPolyline(p) }

// -------------------------------------------------------------------
// Ellipse
// -------------------------------------------------------------------

// EllipseShape is an ellipse in parametric form
//
//	P(t) = Center + U*cos(t) + V*sin(t)
//
// where U and V are the semi-axis vectors. Affine transforms map U and
// V through the linear part, so the shape stays an exact ellipse under
// rotation, scaling and shear, and its bounding box is computed from
// the parametric extrema rather than a pre-rotation box.
type EllipseShape struct {
	Center Point
	U, V   Vec2
	style  Style
}

// NewEllipse creates an axis-aligned ellipse with semi-axes rx and ry.
func NewEllipse(center Point, rx, ry float64, style ...Style) *EllipseShape {
	return &EllipseShape{
		Center: center,
		U:      Vec2{X: rx},
		V:      Vec2{Y: ry},
		style:  pickStyle(style),
	}
}

// NewCircle creates a circle of the given radius.
func NewCircle(center Point, r float64, style ...Style) *EllipseShape {
	return NewEllipse(center, r, r, style...)
}

// Kind returns KindEllipse.
func (e *EllipseShape) Kind() Kind { return KindEllipse }

// Style returns the ellipse's style.
func (e *EllipseShape) Style() *Style { return &e.style }

// PointAt evaluates the parametric form at angle t.
func (e *EllipseShape) PointAt(t float64) Point {
	cos, sin := math.Cos(t), math.Sin(t)
	return Point{
		X: e.Center.X + e.U.X*cos + e.V.X*sin,
		Y: e.Center.Y + e.U.Y*cos + e.V.Y*sin,
	}
}

// Rx returns the length of the first semi-axis.
func (e *EllipseShape) Rx() float64 { return e.U.Length() }

// Ry returns the length of the second semi-axis.
func (e *EllipseShape) Ry() float64 { return e.V.Length() }

// Rotation returns the angle of the first semi-axis.
func (e *EllipseShape) Rotation() float64 { return e.U.Angle() }

// Bounds returns the tight bounding box. For the parametric form the
// per-axis extent is sqrt(Ux^2+Vx^2) resp. sqrt(Uy^2+Vy^2), which is
// exact for arbitrarily rotated and sheared ellipses.
func (e *EllipseShape) Bounds(mode BoundsMode) Rect {
	ex := math.Hypot(e.U.X, e.V.X)
	ey := math.Hypot(e.U.Y, e.V.Y)
	r := Rect{Left: e.Center.X - ex, Top: e.Center.Y + ey, Width: 2 * ex, Height: 2 * ey}
	return growForMode(r, mode, &e.style)
}

// Transform maps the center through m and the semi-axes through the
// linear part of m.
func (e *EllipseShape) Transform(m Matrix) {
	e.Center = m.TransformPoint(e.Center)
	e.U = m.TransformVector(e.U)
	e.V = m.TransformVector(e.V)
}

// Clone returns an independent copy.
func (e *EllipseShape) Clone() Shape {
	out := *e
	out.style = e.style.Clone()
	return &out
}

// Accept visits the ellipse.
func (e *EllipseShape) Accept(v Visitor) error { return v.VisitEllipse(e) }

// ToPolygon approximates the ellipse boundary with n vertices,
// used by the hachure filter and by serializers without native
// ellipse support.
func (e *EllipseShape) ToPolygon(n int) *Path {
	if n < 3 {
		n = 3
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = e.PointAt(2 * math.Pi * float64(i) / float64(n))
	}
	return NewClosedPath(points...)
}

// -------------------------------------------------------------------
// Bezier
// -------------------------------------------------------------------

// BezierShape is a chain of cubic Bezier segments. Consecutive
// segments are assumed to be connected; the model does not enforce
// continuity.
type BezierShape struct {
	Segments []CubicBez
	style    Style
}

// NewBezier creates a shape from cubic segments.
func NewBezier(segments []CubicBez, style ...Style) *BezierShape {
	segs := make([]CubicBez, len(segments))
	copy(segs, segments)
	return &BezierShape{Segments: segs, style: pickStyle(style)}
}

// Kind returns KindBezier.
func (b *BezierShape) Kind() Kind { return KindBezier }

// Style returns the curve's style.
func (b *BezierShape) Style() *Style { return &b.style }

// Bounds returns the union of the segments' curve-extrema boxes.
func (b *BezierShape) Bounds(mode BoundsMode) Rect {
	r := NullRect()
	for _, seg := range b.Segments {
		r = r.Union(seg.BoundingBox())
	}
	return growForMode(r, mode, &b.style)
}

// Transform maps all control points through m.
func (b *BezierShape) Transform(m Matrix) {
	for i := range b.Segments {
		b.Segments[i] = b.Segments[i].Transform(m)
	}
}

// Clone returns an independent copy.
func (b *BezierShape) Clone() Shape {
	segs := make([]CubicBez, len(b.Segments))
	copy(segs, b.Segments)
	return &BezierShape{Segments: segs, style: b.style.Clone()}
}

// Accept visits the curve.
func (b *BezierShape) Accept(v Visitor) error { return v.VisitBezier(b) }

// Flatten returns the polyline approximation of the whole chain.
func (b *BezierShape) Flatten(tolerance float64) *Path {
	if len(b.Segments) == 0 {
		return NewPath()
	}
	points := []Point{b.Segments[0].P0}
	for _, seg := range b.Segments {
		points = seg.Flatten(tolerance, points)
	}
	return NewPath(points...)
}

// -------------------------------------------------------------------
// Text
// -------------------------------------------------------------------

// TextAlign positions text content relative to its anchor.
type TextAlign int

const (
	// AlignLeft anchors the left edge of the content.
	AlignLeft TextAlign = iota
	// AlignCenter anchors the content center.
	AlignCenter
	// AlignRight anchors the right edge of the content.
	AlignRight
)

// TextShape is a text anchor. The scene model carries only the anchor
// position, content and alignment; glyph metrics and outlines are the
// concern of the serializers consuming the scene.
type TextShape struct {
	Anchor  Point
	Content string
	Align   TextAlign
	Angle   float64
	style   Style
}

// NewText creates a text anchor with left alignment.
func NewText(anchor Point, content string, style ...Style) *TextShape {
	return &TextShape{Anchor: anchor, Content: content, style: pickStyle(style)}
}

// Kind returns KindText.
func (t *TextShape) Kind() Kind { return KindText }

// Style returns the text's style.
func (t *TextShape) Style() *Style { return &t.style }

// Bounds returns the degenerate box at the anchor. Without font
// metrics the geometric extent of a text is its anchor point.
func (t *TextShape) Bounds(mode BoundsMode) Rect {
	return NullRect().GrowToContain(t.Anchor)
}

// Transform maps the anchor through m and accumulates the rotational
// part of m into the text angle.
func (t *TextShape) Transform(m Matrix) {
	t.Anchor = m.TransformPoint(t.Anchor)
	t.Angle += Vec2{X: m.A, Y: m.D}.Angle()
}

// Clone returns an independent copy.
func (t *TextShape) Clone() Shape {
	out := *t
	out.style = t.style.Clone()
	return &out
}

// Accept visits the text anchor.
func (t *TextShape) Accept(v Visitor) error { return v.VisitText(t) }
