package scene2d

import "math"

// Curve types for 2D geometry operations.

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Midpoint returns the midpoint of the line segment.
func (l Line) Midpoint() Point {
	return l.Eval(0.5)
}

// Reversed returns a copy of the line with endpoints swapped.
func (l Line) Reversed() Line {
	return Line{P0: l.P1, P1: l.P0}
}

// Tangent returns the displacement from P0 to P1.
func (l Line) Tangent() Vec2 {
	return Vec(l.P0, l.P1)
}

// BoundingBox returns the tight bounding box of the segment.
func (l Line) BoundingBox() Rect {
	return RectFromPoints(l.P0, l.P1)
}

// Intersection returns the intersection point of the infinite lines
// through l and m. Parallel lines have no solution and yield the
// Infinity sentinel.
func (l Line) Intersection(m Line) Point {
	d1 := l.Tangent()
	d2 := m.Tangent()
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-12 {
		return Infinity()
	}
	t := Vec(l.P0, m.P0).Cross(d2) / denom
	return l.Eval(t)
}

// CubicBez represents a cubic Bezier curve with control points
// P0 (start), P1, P2 (controls) and P3 (end).
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t using the Bernstein form.
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using
// de Casteljau's algorithm.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	q0 := c.P0.Lerp(c.P1, 0.5)
	q1 := c.P1.Lerp(c.P2, 0.5)
	q2 := c.P2.Lerp(c.P3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	return CubicBez{P0: c.P0, P1: q0, P2: r0, P3: s},
		CubicBez{P0: s, P1: r1, P2: q2, P3: c.P3}
}

// BoundingBox returns the tight bounding box of the curve, computed
// from the derivative roots per axis rather than the control polygon.
func (c CubicBez) BoundingBox() Rect {
	r := NullRect().GrowToContain(c.P0).GrowToContain(c.P3)
	for _, t := range cubicExtrema(c.P0.X, c.P1.X, c.P2.X, c.P3.X) {
		r = r.GrowToContain(c.Eval(t))
	}
	for _, t := range cubicExtrema(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y) {
		r = r.GrowToContain(c.Eval(t))
	}
	return r
}

// Flatten appends a polyline approximation of the curve to dst,
// excluding the start point. tolerance bounds the maximal distance
// between curve and polyline.
func (c CubicBez) Flatten(tolerance float64, dst []Point) []Point {
	d1 := distanceToSegment(c.P1, c.P0, c.P3)
	d2 := distanceToSegment(c.P2, c.P0, c.P3)
	if math.Max(d1, d2) <= tolerance {
		return append(dst, c.P3)
	}
	left, right := c.Subdivide()
	dst = left.Flatten(tolerance, dst)
	return right.Flatten(tolerance, dst)
}

// Transform returns the curve with all control points mapped through m.
func (c CubicBez) Transform(m Matrix) CubicBez {
	return CubicBez{
		P0: m.TransformPoint(c.P0),
		P1: m.TransformPoint(c.P1),
		P2: m.TransformPoint(c.P2),
		P3: m.TransformPoint(c.P3),
	}
}

// cubicExtrema returns the parameters in (0, 1) where the cubic with
// the given per-axis control values has zero derivative.
func cubicExtrema(v0, v1, v2, v3 float64) []float64 {
	// Derivative is a quadratic: at² + bt + c.
	a := 3 * (-v0 + 3*v1 - 3*v2 + v3)
	b := 6 * (v0 - 2*v1 + v2)
	c := 3 * (v1 - v0)

	var roots []float64
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) > 1e-12 {
			roots = append(roots, -c/b)
		}
	} else {
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			roots = append(roots, (-b+sq)/(2*a), (-b-sq)/(2*a))
		}
	}

	out := roots[:0]
	for _, t := range roots {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

// distanceToSegment returns the distance from p to the segment (a, b).
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen2 := ab.LengthSquared()
	if abLen2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
