package sketch

import (
	"math"
	"math/rand/v2"
	"testing"

	scene "github.com/gogpu/scene2d"
)

func fixedRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func countKind(l *scene.ShapeList, k scene.Kind) int {
	n := 0
	for i := 0; i < l.Len(); i++ {
		if l.At(i).Kind() == k {
			n++
		}
	}
	return n
}

func TestHachureUnitCircleSegmentCount(t *testing.T) {
	c := scene.NewCircle(scene.Pt(0, 0), 1)
	segs := hachureSegments(c, 0, 0.1)

	// Scan lines from y=-1 to y=1 in steps of 0.1, tangents included.
	if len(segs) != 21 {
		t.Fatalf("got %d segments, want 21", len(segs))
	}
	for _, s := range segs {
		// Chord endpoints lie on the circle.
		for _, p := range []scene.Point{s.P0, s.P1} {
			if d := p.Length(); math.Abs(d-1) > 1e-6 {
				t.Errorf("chord endpoint %v at radius %g", p, d)
			}
		}
		// Horizontal chords at angle 0.
		if math.Abs(s.P0.Y-s.P1.Y) > 1e-9 {
			t.Errorf("chord %v not horizontal", s)
		}
	}
}

func TestHachureRotatedEllipseChords(t *testing.T) {
	// Chords of a rotated ellipse come from the analytic parametric
	// form, not from an axis-aligned approximation: every endpoint must
	// land exactly on the ellipse boundary.
	e := scene.NewEllipse(scene.Pt(3, -2), 2, 1)
	e.Transform(scene.RotateAbout(math.Pi/3, scene.Pt(3, -2)))

	segs := hachureSegments(e, 0, 0.2)
	if len(segs) == 0 {
		t.Fatal("no segments")
	}

	// Mapping boundary points back through the axis matrix must land on
	// the unit circle.
	axes := scene.Matrix{
		A: e.U.X, B: e.V.X, C: e.Center.X,
		D: e.U.Y, E: e.V.Y, F: e.Center.Y,
	}.Invert()
	for _, s := range segs {
		if math.Abs(s.P0.Y-s.P1.Y) > 1e-9 {
			t.Errorf("chord %v not horizontal", s)
		}
		for _, p := range []scene.Point{s.P0, s.P1} {
			if r := axes.TransformPoint(p).Length(); math.Abs(r-1) > 1e-6 {
				t.Errorf("endpoint %v off the boundary (unit radius %g)", p, r)
			}
		}
	}
}

func TestHachureSquare(t *testing.T) {
	p := scene.NewPolygon([]scene.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	})
	segs := hachureSegments(p, 0, 1)

	if len(segs) != 10 {
		t.Fatalf("got %d segments, want 10", len(segs))
	}
	for _, s := range segs {
		if math.Abs(s.Length()-10) > 1e-9 {
			t.Errorf("segment length %g, want 10", s.Length())
		}
	}
}

func TestHachureAngleRotatesSegments(t *testing.T) {
	p := scene.NewPolygon([]scene.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	})
	angle := math.Pi / 4
	segs := hachureSegments(p, angle, 1)
	if len(segs) == 0 {
		t.Fatal("no segments")
	}
	for _, s := range segs {
		got := s.Tangent().Angle()
		if d := math.Abs(math.Mod(got-angle, math.Pi)); d > 1e-9 && math.Abs(d-math.Pi) > 1e-9 {
			t.Errorf("segment angle %g, want %g mod pi", got, angle)
		}
	}
}

func TestHachureRespectsHoles(t *testing.T) {
	outer := scene.NewClosedPath(
		scene.Pt(0, 0), scene.Pt(10, 0), scene.Pt(10, 10), scene.Pt(0, 10))
	outer.AddHole(scene.NewClosedPath(
		scene.Pt(4, 4), scene.Pt(6, 4), scene.Pt(6, 6), scene.Pt(4, 6)))
	p := scene.NewPathShape(outer)

	segs := hachureSegments(p, 0, 1)
	// Scan lines at y=4 and y=5 cross the hole and split in two.
	split := 0
	for _, s := range segs {
		if s.P0.Y > 3.5 && s.P0.Y < 5.5 && s.Length() < 9 {
			split++
		}
	}
	if split < 2 {
		t.Errorf("hole rows not split: %d short segments", split)
	}
	for _, s := range segs {
		mid := s.Midpoint()
		if mid.X > 4 && mid.X < 6 && mid.Y > 4 && mid.Y < 6 {
			t.Errorf("segment midpoint %v inside the hole", mid)
		}
	}
}

func TestHachureOpenPathNotFilled(t *testing.T) {
	p := scene.NewPolyline([]scene.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	if segs := hachureSegments(p, 0, 1); segs != nil {
		t.Errorf("open path produced %d segments", len(segs))
	}
}

func TestRoughRepeat(t *testing.T) {
	l := scene.NewLine(scene.Pt(0, 0), scene.Pt(10, 0))
	out := Rough(l, Options{Repeat: 3, Rand: fixedRand()}).(*scene.ShapeList)
	if out.Len() != 3 {
		t.Fatalf("got %d edge copies, want 3", out.Len())
	}
	for i := 0; i < out.Len(); i++ {
		if out.At(i).Kind() != scene.KindLine {
			t.Errorf("child %d kind = %s", i, out.At(i).Kind())
		}
	}
}

func TestRoughJitterBound(t *testing.T) {
	l := scene.NewLine(scene.Pt(0, 0), scene.Pt(10, 0))
	out := Rough(l, Options{Repeat: 20, Jitter: 0.02, Rand: fixedRand()}).(*scene.ShapeList)

	// Bound is jitter times edge length per coordinate.
	bound := 0.02*10 + 1e-9
	for i := 0; i < out.Len(); i++ {
		seg := out.At(i).(*scene.LineShape).Seg
		if math.Abs(seg.P0.X) > bound || math.Abs(seg.P0.Y) > bound {
			t.Errorf("start %v beyond jitter bound", seg.P0)
		}
		if math.Abs(seg.P1.X-10) > bound || math.Abs(seg.P1.Y) > bound {
			t.Errorf("end %v beyond jitter bound", seg.P1)
		}
	}
}

func TestRoughDeterministicWithSeed(t *testing.T) {
	build := func() *scene.ShapeList {
		sq := scene.NewPolygon([]scene.Point{
			{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 5},
		})
		return Rough(sq, Options{
			Repeat: 2,
			Mode:   SketchyHachure,
			Rand:   fixedRand(),
		}).(*scene.ShapeList)
	}

	a, b := build(), build()
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		sa := a.At(i).(*scene.LineShape).Seg
		sb := b.At(i).(*scene.LineShape).Seg
		if sa != sb {
			t.Fatalf("child %d differs: %v vs %v", i, sa, sb)
		}
	}
}

func TestRoughFillModes(t *testing.T) {
	sq := func() scene.Shape {
		return scene.NewPolygon([]scene.Point{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		})
	}

	// 4 polygon edges, spacing 1 gives 10 hachure lines.
	plain := Rough(sq(), Options{Mode: PlainFilling, Rand: fixedRand()}).(*scene.ShapeList)
	if plain.Len() != 5 {
		t.Errorf("plain filling: %d children, want filled copy + 4 edges", plain.Len())
	}
	if plain.At(0).Style().Pen != nil {
		t.Error("plain fill copy must drop the pen")
	}

	straight := Rough(sq(), Options{Mode: StraightHachure, Rand: fixedRand()}).(*scene.ShapeList)
	if straight.Len() != 14 {
		t.Errorf("straight hachure: %d children, want 10 fill + 4 edges", straight.Len())
	}

	crossing := Rough(sq(), Options{Mode: CrossingHachure, Rand: fixedRand()}).(*scene.ShapeList)
	if crossing.Len() != 24 {
		t.Errorf("crossing hachure: %d children, want 20 fill + 4 edges", crossing.Len())
	}

	none := Rough(sq(), Options{Mode: NoFilling, Rand: fixedRand()}).(*scene.ShapeList)
	if none.Len() != 4 {
		t.Errorf("no filling: %d children, want edges only", none.Len())
	}

	// Edge copies must not inherit the interior fill.
	for i := 0; i < none.Len(); i++ {
		if none.At(i).Style().Fill != nil {
			t.Error("edge copy kept a fill")
		}
	}
}

func TestRoughOpenShapesNotFilled(t *testing.T) {
	open := scene.NewPolyline([]scene.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	out := Rough(open, Options{Mode: StraightHachure, Rand: fixedRand()}).(*scene.ShapeList)
	if out.Len() != 2 {
		t.Errorf("open polyline: %d children, want 2 edge copies", out.Len())
	}
}

func TestRoughPassesThroughDotsAndText(t *testing.T) {
	in := scene.Mix(
		scene.NewDot(scene.Pt(0, 0)),
		scene.NewText(scene.Pt(1, 1), "label"),
	)
	out := Rough(in, Options{Rand: fixedRand()}).(*scene.ShapeList)
	if out.Len() != 2 {
		t.Fatalf("got %d children", out.Len())
	}
	if countKind(out, scene.KindDot) != 1 || countKind(out, scene.KindText) != 1 {
		t.Error("dots and texts must pass through unchanged")
	}
}

func TestRoughPreservesGroupClip(t *testing.T) {
	g := scene.NewGroup()
	g.Add(scene.NewLine(scene.Pt(0, 0), scene.Pt(5, 0)))
	g.SetClip(scene.NewClosedPath(scene.Pt(0, 0), scene.Pt(4, 0), scene.Pt(4, 4)))

	out := Rough(g, Options{Rand: fixedRand()}).(*scene.ShapeList)
	if out.Len() != 1 {
		t.Fatalf("got %d children", out.Len())
	}
	rg, ok := out.At(0).(*scene.Group)
	if !ok {
		t.Fatalf("child is %s, want a group", out.At(0).Kind())
	}
	if rg.Clip() == nil {
		t.Fatal("group clip lost")
	}
	if rg.Len() != 1 || rg.At(0).Kind() != scene.KindLine {
		t.Errorf("group content not sketched: %d children", rg.Len())
	}
}

func TestRoughNestedGroups(t *testing.T) {
	inner := scene.NewGroup()
	inner.Add(scene.NewLine(scene.Pt(0, 0), scene.Pt(5, 0)))
	inner.Add(scene.NewDot(scene.Pt(1, 1)))
	outer := scene.NewGroup()
	outer.SetClip(scene.NewClosedPath(scene.Pt(0, 0), scene.Pt(6, 0), scene.Pt(6, 6)))
	outer.Add(inner)

	out := Rough(outer, Options{Repeat: 2, Rand: fixedRand()}).(*scene.ShapeList)
	rg, ok := out.At(0).(*scene.Group)
	if !ok {
		t.Fatalf("child is %s, want a group", out.At(0).Kind())
	}
	if rg.Clip() == nil {
		t.Fatal("outer clip lost")
	}
	ri, ok := rg.At(0).(*scene.Group)
	if !ok {
		t.Fatalf("nested child is %s, want a group", rg.At(0).Kind())
	}
	if ri.Len() != 3 {
		t.Fatalf("nested group has %d children, want 2 jittered lines and a dot", ri.Len())
	}
	if ri.At(2).Kind() != scene.KindDot {
		t.Errorf("last nested child is %s, want a dot", ri.At(2).Kind())
	}
}

func TestRoughDoesNotMutateInput(t *testing.T) {
	sq := scene.NewPolygon([]scene.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	})
	before := sq.Bounds(scene.BoundsGeometry)
	style := sq.Style().Clone()

	Rough(sq, Options{Mode: CrossingHachure, Repeat: 3, Rand: fixedRand()})

	if got := sq.Bounds(scene.BoundsGeometry); got != before {
		t.Error("input geometry mutated")
	}
	if sq.Style().Fill != style.Fill || sq.Style().Pen != style.Pen {
		t.Error("input style mutated")
	}
}

func TestEllipseEdgesSampled(t *testing.T) {
	e := scene.NewCircle(scene.Pt(0, 0), 5)
	out := Rough(e, Options{Rand: fixedRand()}).(*scene.ShapeList)
	if out.Len() != 32 {
		t.Errorf("got %d edge copies, want one per 32-gon edge", out.Len())
	}
}
