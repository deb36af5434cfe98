package scene2d

import "math"

const (
	zeroLengthThreshold   = 1e-12
	collinearityThreshold = 1e-9
)

// Outline is the stroked boundary of a path: one or more closed
// polygons tracing the true boundary, plus a list of auxiliary marker
// points (cap centers and miter apexes) for decoration use.
type Outline struct {
	Polygons []*Path
	Markers  []Point
}

// strokeSeg is a non-degenerate centerline segment with precomputed
// unit tangent and left normal.
type strokeSeg struct {
	a, b Point
	t, n Vec2
}

// Outline computes the stroked boundary of p under the stroke
// configuration.
//
// For each centerline segment both endpoints are offset by half the
// width along the unit normal; interior vertices are reconciled per
// the join rule (miter falls back to bevel past the miter limit,
// round inserts a sampled arc); open endpoints receive the cap rule.
// Closed paths wrap the join logic at the seam and produce two
// boundary rings.
//
// Degenerate input is absorbed: zero-length segments are skipped, a
// path with fewer than two distinct points yields an empty outline
// (or a single disc polygon under a round cap), and a non-positive
// width yields an empty outline.
func (s Stroke) Outline(p *Path) Outline {
	if p == nil || s.Width <= 0 {
		return Outline{}
	}

	if s.IsDashed() {
		solid := s.Clone()
		solid.Dash = nil
		var out Outline
		for _, sub := range dashSplit(p, s.Dash) {
			o := solid.Outline(sub)
			out.Polygons = append(out.Polygons, o.Polygons...)
			out.Markers = append(out.Markers, o.Markers...)
		}
		return out
	}

	segs := buildSegs(p)
	if len(segs) == 0 {
		return degenerateOutline(p, s)
	}

	o := &outliner{stroke: s, d: s.Width / 2}
	if p.Closed() && len(segs) >= 2 {
		o.closedRings(segs)
	} else {
		o.openOutline(segs)
	}
	return o.out
}

// buildSegs flattens the path edges into oriented segments, skipping
// zero-length edges so normal computation never divides by zero.
func buildSegs(p *Path) []strokeSeg {
	n := p.Len()
	if n < 2 {
		return nil
	}
	var segs []strokeSeg
	for i := 0; i < p.EdgeCount(); i++ {
		e := p.Edge(i)
		d := e.Tangent()
		length := d.Length()
		if length < zeroLengthThreshold {
			continue
		}
		t := d.Mul(1 / length)
		segs = append(segs, strokeSeg{a: e.P0, b: e.P1, t: t, n: t.Perp()})
	}
	return segs
}

// degenerateOutline handles paths with no strokeable segment. Only a
// round cap carries an orientation-free rendering: a disc around the
// single distinct point.
func degenerateOutline(p *Path, s Stroke) Outline {
	if p.Len() == 0 || s.Cap != LineCapRound {
		return Outline{}
	}
	center := p.At(0)
	const n = 32
	points := make([]Point, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / n
		points[i] = Point{
			X: center.X + s.Width/2*math.Cos(a),
			Y: center.Y + s.Width/2*math.Sin(a),
		}
	}
	return Outline{
		Polygons: []*Path{NewClosedPath(points...)},
		Markers:  []Point{center},
	}
}

// outliner accumulates boundary polygons point by point.
type outliner struct {
	stroke Stroke
	d      float64
	pts    []Point
	out    Outline
}

func (o *outliner) push(p Point) {
	o.pts = append(o.pts, p)
}

// flush closes the accumulated point run into a boundary polygon.
// Runs too short to enclose area are dropped.
func (o *outliner) flush() {
	if len(o.pts) >= 3 {
		o.out.Polygons = append(o.out.Polygons, NewClosedPath(o.pts...))
	}
	o.pts = nil
}

// off returns p offset by distance d along n.
func off(p Point, n Vec2, d float64) Point {
	return n.Mul(d).Offset(p)
}

// openOutline traces the boundary of an open stroked path: forward on
// the left offset side, end cap, backward on the right offset side,
// start cap.
func (o *outliner) openOutline(segs []strokeSeg) {
	d := o.d
	first, last := &segs[0], &segs[len(segs)-1]

	o.push(off(first.a, first.n, d))
	for i := 0; i+1 < len(segs); i++ {
		o.cornerForward(segs[i].b, &segs[i], &segs[i+1])
	}
	o.push(off(last.b, last.n, d))

	o.cap(last.b, last.t)

	o.push(off(last.b, last.n.Neg(), d))
	for i := len(segs) - 1; i > 0; i-- {
		o.cornerBackward(segs[i].a, &segs[i-1], &segs[i])
	}
	o.push(off(first.a, first.n.Neg(), d))

	o.cap(first.a, first.t.Neg())

	o.out.Markers = append(o.out.Markers, first.a, last.b)
	o.flush()
}

// closedRings traces the two boundary rings of a closed stroked path.
// The join logic wraps at the seam between the last and first segment;
// no caps are applied.
func (o *outliner) closedRings(segs []strokeSeg) {
	n := len(segs)

	for i := 0; i < n; i++ {
		o.cornerForward(segs[i].b, &segs[i], &segs[(i+1)%n])
	}
	o.flush()

	for i := n - 1; i >= 0; i-- {
		o.cornerBackward(segs[i].a, &segs[(i-1+n)%n], &segs[i])
	}
	o.flush()
}

// cornerForward reconciles the offset edges at p between s1 and s2 on
// the left side, pushing points in forward traversal order.
func (o *outliner) cornerForward(p Point, s1, s2 *strokeSeg) {
	cross := s1.t.Cross(s2.t)
	dot := s1.t.Dot(s2.t)

	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		// Collinear continuation: no join geometry.
		o.push(off(p, s1.n, o.d))
		o.push(off(p, s2.n, o.d))
		return
	}

	if cross > 0 {
		// Left side is inside the turn.
		o.inner(p, s1, s2, false)
		return
	}

	o.push(off(p, s1.n, o.d))
	o.join(p, s1.n, s2.n, dot)
	o.push(off(p, s2.n, o.d))
}

// cornerBackward reconciles the offset edges at p between s1 and s2 on
// the right side, pushing points in backward traversal order (from s2
// toward s1).
func (o *outliner) cornerBackward(p Point, s1, s2 *strokeSeg) {
	cross := s1.t.Cross(s2.t)
	dot := s1.t.Dot(s2.t)

	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		o.push(off(p, s2.n.Neg(), o.d))
		o.push(off(p, s1.n.Neg(), o.d))
		return
	}

	if cross < 0 {
		// Right side is inside the turn.
		o.inner(p, s1, s2, true)
		return
	}

	o.push(off(p, s2.n.Neg(), o.d))
	o.join(p, s2.n.Neg(), s1.n.Neg(), dot)
	o.push(off(p, s1.n.Neg(), o.d))
}

// inner handles the inside of a corner: the single intersection point
// of the two inner offset edges when it exists, both offset points
// otherwise. negSide selects the right (-n) side.
func (o *outliner) inner(p Point, s1, s2 *strokeSeg, negSide bool) {
	cosTheta := s1.t.Dot(s2.t)
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	if cosTheta <= 1-collinearityThreshold && halfAngle > 1e-9 {
		dir := s1.n.Add(s2.n)
		if negSide {
			dir = dir.Neg()
		}
		if unit, ok := dir.Normalized(); ok {
			o.push(off(p, unit, o.d/halfAngle))
			return
		}
	}
	n1, n2 := s1.n, s2.n
	if negSide {
		n1, n2 = s2.n.Neg(), s1.n.Neg()
	}
	o.push(off(p, n1, o.d))
	o.push(off(p, n2, o.d))
}

// join inserts the outer join geometry between two already-pushed
// offset points. from and to are the unit offset directions on the
// current side; dot is the tangent dot product at the corner.
func (o *outliner) join(p Point, from, to Vec2, dot float64) {
	switch o.stroke.Join {
	case LineJoinBevel:
		// Straight connection, nothing to insert.

	case LineJoinMiter:
		// miterLength = 1/sin(phi/2) with sin(phi/2) = sqrt((1+dot)/2).
		sinHalf := math.Sqrt((1 + dot) / 2)
		const miterEpsilon = 1e-10
		if sinHalf <= miterEpsilon || 1/sinHalf > o.stroke.MiterLimit+miterEpsilon {
			return // fall back to bevel
		}
		if bis, ok := from.Add(to).Normalized(); ok {
			apex := off(p, bis, o.d/sinHalf)
			o.push(apex)
			o.out.Markers = append(o.out.Markers, apex)
		}

	case LineJoinRound:
		sweep := math.Atan2(from.Cross(to), from.Dot(to))
		o.arc(p, from, sweep)
	}
}

// cap inserts the cap geometry at an open endpoint. out is the unit
// tangent pointing away from the path. The flanking offset points are
// pushed by the caller; butt caps therefore insert nothing.
func (o *outliner) cap(p Point, out Vec2) {
	n := out.Perp()
	switch o.stroke.Cap {
	case LineCapButt:
		// Flat edge exactly at the endpoint.

	case LineCapSquare:
		ext := out.Mul(o.d)
		o.push(ext.Add(n.Mul(o.d)).Offset(p))
		o.push(ext.Add(n.Neg().Mul(o.d)).Offset(p))

	case LineCapRound:
		o.arc(p, n, -math.Pi)
	}
}

// arc pushes sampled points of a circular arc of radius d around
// center, starting at direction from and sweeping by the given signed
// angle. The arc endpoints are omitted; the flanking offset points
// already cover them.
func (o *outliner) arc(center Point, from Vec2, sweep float64) {
	steps := int(math.Ceil(math.Abs(sweep) / (math.Pi / 16)))
	if steps < 2 {
		steps = 2
	}
	start := from.Angle()
	for k := 1; k < steps; k++ {
		a := start + sweep*float64(k)/float64(steps)
		o.push(Point{
			X: center.X + o.d*math.Cos(a),
			Y: center.Y + o.d*math.Sin(a),
		})
	}
}

// dashSplit cuts the path into the open sub-paths covered by the dash
// pattern's "on" phases.
func dashSplit(p *Path, d *Dash) []*Path {
	pattern := d.Array
	if len(pattern)%2 == 1 {
		dup := make([]float64, 0, 2*len(pattern))
		dup = append(dup, pattern...)
		dup = append(dup, pattern...)
		pattern = dup
	}
	var total float64
	for _, l := range pattern {
		total += l
	}
	if total <= 0 {
		return []*Path{p}
	}

	// Position the pattern cursor at the dash offset.
	offset := math.Mod(d.Offset, total)
	if offset < 0 {
		offset += total
	}
	idx := 0
	remaining := pattern[0]
	for offset > 0 {
		if offset >= remaining {
			offset -= remaining
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		} else {
			remaining -= offset
			offset = 0
		}
	}

	var out []*Path
	var cur *Path
	drawing := idx%2 == 0
	if drawing && p.Len() > 0 {
		cur = NewPath(p.At(0))
	}

	flushDash := func() {
		if cur != nil && cur.Len() >= 2 {
			out = append(out, cur)
		}
		cur = nil
	}

	for i := 0; i < p.EdgeCount(); i++ {
		e := p.Edge(i)
		segLen := e.Length()
		pos := 0.0
		for segLen-pos > zeroLengthThreshold {
			step := math.Min(remaining, segLen-pos)
			pos += step
			remaining -= step
			pt := e.Eval(pos / segLen)
			if drawing {
				cur.Add(pt)
			}
			if remaining <= zeroLengthThreshold {
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
				drawing = !drawing
				if drawing {
					cur = NewPath(pt)
				} else {
					flushDash()
				}
			}
		}
	}
	if drawing {
		flushDash()
	}
	return out
}
