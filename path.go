package scene2d

// Path is an ordered sequence of vertices, open or closed, with an
// optional set of holes: secondary closed sub-paths that subtract from
// the filled interior. A closed path's first and last stored vertices
// are logically connected but never duplicated in storage.
//
// Holes are assumed to lie inside the outer path; the model does not
// enforce containment geometrically, renderers honor it compositionally.
type Path struct {
	points []Point
	closed bool
	holes  []*Path
}

// NewPath creates an open path from the given vertices.
func NewPath(points ...Point) *Path {
	p := &Path{points: make([]Point, len(points))}
	copy(p.points, points)
	return p
}

// NewClosedPath creates a closed path from the given vertices.
// A trailing vertex equal to the first is dropped so the seam is never
// stored twice.
func NewClosedPath(points ...Point) *Path {
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	p := NewPath(points...)
	p.closed = true
	return p
}

// Add appends a vertex to the path.
func (p *Path) Add(pt Point) *Path {
	p.points = append(p.points, pt)
	return p
}

// Close marks the path as closed, dropping a stored duplicate of the
// first vertex if present.
func (p *Path) Close() *Path {
	if n := len(p.points); n > 1 && p.points[0] == p.points[n-1] {
		p.points = p.points[:n-1]
	}
	p.closed = true
	return p
}

// Closed reports whether the path is closed.
func (p *Path) Closed() bool {
	return p.closed
}

// Len returns the number of stored vertices.
func (p *Path) Len() int {
	return len(p.points)
}

// At returns the i-th stored vertex.
func (p *Path) At(i int) Point {
	return p.points[i]
}

// Vertices returns a copy of the stored vertices.
func (p *Path) Vertices() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// EdgeCount returns the number of edges: Len-1 for open paths,
// Len for closed paths (including the seam edge).
func (p *Path) EdgeCount() int {
	n := len(p.points)
	if n < 2 {
		return 0
	}
	if p.closed {
		return n
	}
	return n - 1
}

// Edge returns the i-th edge. For closed paths the last edge wraps
// from the final vertex back to the first.
func (p *Path) Edge(i int) Line {
	return Line{P0: p.points[i], P1: p.points[(i+1)%len(p.points)]}
}

// AddHole attaches a closed sub-path subtracting from the interior.
// The hole is deep-copied and forced closed.
func (p *Path) AddHole(hole *Path) *Path {
	h := hole.Clone()
	h.closed = true
	h.holes = nil
	p.holes = append(p.holes, h)
	return p
}

// Holes returns the attached holes. The returned slice is owned by the
// path; callers must not mutate it.
func (p *Path) Holes() []*Path {
	return p.holes
}

// Transform applies an affine transform to every vertex in place,
// including hole vertices.
func (p *Path) Transform(m Matrix) {
	for i := range p.points {
		p.points[i] = m.TransformPoint(p.points[i])
	}
	for _, h := range p.holes {
		h.Transform(m)
	}
}

// Bounds returns the tight bounding box of the outer vertices.
// Holes never extend the box; an empty path yields the null rect.
func (p *Path) Bounds() Rect {
	r := NullRect()
	for _, pt := range p.points {
		r = r.GrowToContain(pt)
	}
	return r
}

// Clone creates an independent deep copy of the path and its holes.
func (p *Path) Clone() *Path {
	out := &Path{
		points: make([]Point, len(p.points)),
		closed: p.closed,
	}
	copy(out.points, p.points)
	if len(p.holes) > 0 {
		out.holes = make([]*Path, len(p.holes))
		for i, h := range p.holes {
			out.holes[i] = h.Clone()
		}
	}
	return out
}

// Reverse reverses the vertex order in place.
func (p *Path) Reverse() {
	for i, j := 0, len(p.points)-1; i < j; i, j = i+1, j-1 {
		p.points[i], p.points[j] = p.points[j], p.points[i]
	}
}

// Contains reports whether pt lies inside the closed path under the
// even-odd rule, with holes subtracted. Open paths contain nothing.
func (p *Path) Contains(pt Point) bool {
	if !p.closed || len(p.points) < 3 {
		return false
	}
	if !evenOddInside(p.points, pt) {
		return false
	}
	for _, h := range p.holes {
		if len(h.points) >= 3 && evenOddInside(h.points, pt) {
			return false
		}
	}
	return true
}

// evenOddInside runs a standard even-odd ray crossing test against the
// polygon formed by points.
func evenOddInside(points []Point, pt Point) bool {
	inside := false
	n := len(points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := points[i], points[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			x := pi.X + (pt.Y-pi.Y)*(pj.X-pi.X)/(pj.Y-pi.Y)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
