package scene2d

import (
	"math"
	"testing"
)

func TestLineEval(t *testing.T) {
	l := Line{P0: Pt(0, 0), P1: Pt(10, 20)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(5, 10)},
		{1, Pt(10, 20)},
	}
	for _, tc := range tests {
		if got := l.Eval(tc.t); got.Distance(tc.want) > epsilon {
			t.Errorf("Eval(%g) = %v, want %v", tc.t, got, tc.want)
		}
	}
	if l.Midpoint() != l.Eval(0.5) {
		t.Error("Midpoint disagrees with Eval(0.5)")
	}
	if got := l.Length(); math.Abs(got-math.Sqrt(500)) > epsilon {
		t.Errorf("Length = %g", got)
	}
	r := l.Reversed()
	if r.P0 != l.P1 || r.P1 != l.P0 {
		t.Errorf("Reversed = %+v", r)
	}
}

func TestLineIntersection(t *testing.T) {
	a := Line{P0: Pt(0, 0), P1: Pt(10, 0)}
	b := Line{P0: Pt(5, -5), P1: Pt(5, 5)}
	if got := a.Intersection(b); got.Distance(Pt(5, 0)) > epsilon {
		t.Errorf("intersection = %v, want (5,0)", got)
	}

	// The infinite carriers intersect even outside the segments.
	c := Line{P0: Pt(20, -5), P1: Pt(20, -4)}
	if got := a.Intersection(c); got.Distance(Pt(20, 0)) > epsilon {
		t.Errorf("carrier intersection = %v, want (20,0)", got)
	}

	parallel := Line{P0: Pt(0, 1), P1: Pt(10, 1)}
	if got := a.Intersection(parallel); !got.IsInfinite() {
		t.Errorf("parallel intersection = %v, want Infinity", got)
	}
}

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 3), P2: Pt(3, 3), P3: Pt(4, 0)}
	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %v", got)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %v", got)
	}
	// Symmetric control polygon: the midpoint lies on the axis of
	// symmetry.
	if got := c.Eval(0.5); math.Abs(got.X-2) > epsilon {
		t.Errorf("Eval(0.5).X = %g, want 2", got.X)
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 4), P2: Pt(4, 4), P3: Pt(4, 0)}
	left, right := c.Subdivide()

	if left.P0 != c.P0 || right.P3 != c.P3 {
		t.Fatal("subdivision must preserve the endpoints")
	}
	if left.P3 != right.P0 {
		t.Fatal("halves must share the split point")
	}
	if got := left.P3; got.Distance(c.Eval(0.5)) > epsilon {
		t.Errorf("split point %v, want %v", got, c.Eval(0.5))
	}
	// The halves retrace the original curve.
	for _, u := range []float64{0.25, 0.5, 0.75} {
		if got, want := left.Eval(u), c.Eval(u/2); got.Distance(want) > epsilon {
			t.Errorf("left.Eval(%g) = %v, want %v", u, got, want)
		}
		if got, want := right.Eval(u), c.Eval(0.5+u/2); got.Distance(want) > epsilon {
			t.Errorf("right.Eval(%g) = %v, want %v", u, got, want)
		}
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	// The control polygon reaches y=4 but the curve only reaches y=3.
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 4), P2: Pt(4, 4), P3: Pt(4, 0)}
	got := c.BoundingBox()
	want := Rect{Left: 0, Top: 3, Width: 4, Height: 3}
	if !rectsClose(got, want) {
		t.Errorf("BoundingBox = %+v, want %+v", got, want)
	}

	// A straight chain of control points is a degenerate curve.
	s := CubicBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 2), P3: Pt(3, 3)}
	if got := s.BoundingBox(); !rectsClose(got, Rect{Left: 0, Top: 3, Width: 3, Height: 3}) {
		t.Errorf("degenerate BoundingBox = %+v", got)
	}
}

func TestCubicBezFlatten(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 4), P2: Pt(4, 4), P3: Pt(4, 0)}
	pts := c.Flatten(0.01, []Point{c.P0})

	if pts[0] != c.P0 || pts[len(pts)-1] != c.P3 {
		t.Fatal("flattening must run from start to end")
	}
	if len(pts) < 5 {
		t.Fatalf("only %d points for a tight tolerance", len(pts))
	}
	// Each polyline vertex lies on the curve up to the tolerance;
	// sample the curve densely and check vertices are close to it.
	for _, p := range pts {
		best := math.Inf(1)
		for k := 0; k <= 200; k++ {
			best = math.Min(best, p.Distance(c.Eval(float64(k)/200)))
		}
		if best > 0.05 {
			t.Errorf("vertex %v at distance %g from the curve", p, best)
		}
	}

	// A line-like curve flattens to a single appended endpoint.
	s := CubicBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 2), P3: Pt(3, 3)}
	if got := s.Flatten(0.1, nil); len(got) != 1 || got[0] != s.P3 {
		t.Errorf("straight flatten = %v", got)
	}
}

func TestCubicBezTransform(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 1), P3: Pt(3, 0)}
	m := Translate(10, 5)
	got := c.Transform(m)
	for _, u := range []float64{0, 0.3, 1} {
		want := m.TransformPoint(c.Eval(u))
		if got.Eval(u).Distance(want) > epsilon {
			t.Errorf("transformed Eval(%g) = %v, want %v", u, got.Eval(u), want)
		}
	}
}

func TestDistanceToSegment(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	tests := []struct {
		p    Point
		want float64
	}{
		{Pt(5, 3), 3},
		{Pt(-4, 0), 4},
		{Pt(13, 4), 5},
		{Pt(7, 0), 0},
	}
	for _, tc := range tests {
		if got := distanceToSegment(tc.p, a, b); math.Abs(got-tc.want) > epsilon {
			t.Errorf("distanceToSegment(%v) = %g, want %g", tc.p, got, tc.want)
		}
	}
	if got := distanceToSegment(Pt(1, 1), a, a); math.Abs(got-math.Sqrt2) > epsilon {
		t.Errorf("degenerate segment distance = %g", got)
	}
}
