package scene2d

import "math"

// Rect represents an axis-aligned box in the y-up scene convention.
// Left/Top anchor the box at its top-left corner where Top is the
// maximum y-coordinate; Height extends downward from Top. This matches
// the device-independent coordinate system of the scene model, where
// positive y points up.
//
// The distinguished null rect, the empty state produced by shapes with
// no geometry, is the sentinel returned by NullRect. Union and
// intersection treat it explicitly so an empty shape never contributes
// a meaningless box. The zero value is a degenerate rect at the
// origin, which is a real box; a vertex at (0, 0) still counts.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect creates a rect from its top-left corner and extents.
// Negative extents are normalized so Width and Height are >= 0.
func NewRect(left, top, width, height float64) Rect {
	if width < 0 {
		left += width
		width = -width
	}
	if height < 0 {
		top -= height
		height = -height
	}
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// RectFromPoints creates the tight rect containing both points.
func RectFromPoints(p, q Point) Rect {
	return Rect{
		Left:   math.Min(p.X, q.X),
		Top:    math.Max(p.Y, q.Y),
		Width:  math.Abs(p.X - q.X),
		Height: math.Abs(p.Y - q.Y),
	}
}

// NullRect returns the distinguished empty rect. The sentinel anchor
// keeps it distinct from every real box, including the degenerate rect
// at the origin.
func NullRect() Rect {
	return Rect{Left: math.Inf(1), Top: math.Inf(-1)}
}

// IsNull reports whether r is the null rect.
func (r Rect) IsNull() bool {
	return math.IsInf(r.Left, 1)
}

// Right returns the maximum x-coordinate of the rect.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the minimum y-coordinate of the rect.
// Height grows downward from Top, so Bottom = Top - Height.
func (r Rect) Bottom() float64 {
	return r.Top - r.Height
}

// Center returns the center point of the rect.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top - r.Height/2}
}

// Corners returns the four corner points of the rect.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right(), Y: r.Top},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left, Y: r.Bottom()},
	}
}

// Union returns the smallest rect containing both r and other.
// If one operand is null the other is returned; the union of two null
// rects is null.
func (r Rect) Union(other Rect) Rect {
	if r.IsNull() {
		return other
	}
	if other.IsNull() {
		return r
	}
	left := math.Min(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Max(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	return Rect{Left: left, Top: top, Width: right - left, Height: top - bottom}
}

// Intersection returns the overlap of r and other.
// Degenerate (negative) extents are clamped to zero; a null operand
// yields the null rect.
func (r Rect) Intersection(other Rect) Rect {
	if r.IsNull() || other.IsNull() {
		return NullRect()
	}
	left := math.Max(r.Left, other.Left)
	top := math.Min(r.Top, other.Top)
	width := math.Min(r.Right(), other.Right()) - left
	height := top - math.Max(r.Bottom(), other.Bottom())
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// GrowToContain expands the rect minimally to include p.
// Applied over a point sequence starting from the null rect it yields
// the tight bounding box of the sequence.
func (r Rect) GrowToContain(p Point) Rect {
	if r.IsNull() {
		return Rect{Left: p.X, Top: p.Y}
	}
	left := math.Min(r.Left, p.X)
	top := math.Max(r.Top, p.Y)
	right := math.Max(r.Right(), p.X)
	bottom := math.Min(r.Bottom(), p.Y)
	return Rect{Left: left, Top: top, Width: right - left, Height: top - bottom}
}

// Contains reports whether p lies inside the rect, boundary included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() &&
		p.Y <= r.Top && p.Y >= r.Bottom()
}

// StrictlyContains reports whether p lies inside the rect, boundary
// excluded.
func (r Rect) StrictlyContains(p Point) bool {
	return p.X > r.Left && p.X < r.Right() &&
		p.Y < r.Top && p.Y > r.Bottom()
}

// Intersects reports whether any corner of either rect lies inside the
// other, boundary included. For axis-aligned boxes built by the scene
// layout combinators this corner test is the overlap contract. Note
// that it misses overlaps where no corner is contained, such as two
// rects crossing in a plus sign; callers needing full separating-axis
// overlap should compare edge intervals directly.
func (r Rect) Intersects(other Rect) bool {
	for _, c := range other.Corners() {
		if r.Contains(c) {
			return true
		}
	}
	for _, c := range r.Corners() {
		if other.Contains(c) {
			return true
		}
	}
	return false
}

// StrictlyIntersects is like Intersects with boundaries excluded.
func (r Rect) StrictlyIntersects(other Rect) bool {
	for _, c := range other.Corners() {
		if r.StrictlyContains(c) {
			return true
		}
	}
	for _, c := range r.Corners() {
		if other.StrictlyContains(c) {
			return true
		}
	}
	return false
}

// Grow uniformly expands the rect by margin on all four sides.
// A null rect stays null.
func (r Rect) Grow(margin float64) Rect {
	if r.IsNull() {
		return r
	}
	return Rect{
		Left:   r.Left - margin,
		Top:    r.Top + margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// Translate returns the rect shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	if r.IsNull() {
		return r
	}
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Width: r.Width, Height: r.Height}
}
