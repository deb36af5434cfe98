package scene2d

import (
	"errors"
	"testing"
)

// recordingVisitor collects the kinds of visited shapes in traversal
// order, optionally failing at a given kind.
type recordingVisitor struct {
	kinds  []Kind
	failOn Kind
	fail   error
	clips  []*Path
}

func (r *recordingVisitor) visit(k Kind) error {
	r.kinds = append(r.kinds, k)
	if r.fail != nil && k == r.failOn {
		return r.fail
	}
	return nil
}

func (r *recordingVisitor) VisitDot(*DotShape) error           { return r.visit(KindDot) }
func (r *recordingVisitor) VisitLine(*LineShape) error         { return r.visit(KindLine) }
func (r *recordingVisitor) VisitArrow(*ArrowShape) error       { return r.visit(KindArrow) }
func (r *recordingVisitor) VisitPolyline(*PolylineShape) error { return r.visit(KindPolyline) }
func (r *recordingVisitor) VisitEllipse(*EllipseShape) error   { return r.visit(KindEllipse) }
func (r *recordingVisitor) VisitBezier(*BezierShape) error     { return r.visit(KindBezier) }
func (r *recordingVisitor) VisitText(*TextShape) error         { return r.visit(KindText) }
func (r *recordingVisitor) VisitList(*ShapeList) error         { return r.visit(KindList) }

func (r *recordingVisitor) VisitGroup(g *Group) error {
	r.clips = append(r.clips, g.Clip())
	return r.visit(KindGroup)
}

func TestAcceptTraversalOrder(t *testing.T) {
	scene := Mix(
		NewDot(Pt(0, 0)),
		NewLine(Pt(0, 0), Pt(1, 0)),
		Mix(NewEllipse(Pt(0, 0), 1, 1)),
		NewText(Pt(0, 0), "x"),
	)

	rec := &recordingVisitor{}
	if err := scene.Accept(rec); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	want := []Kind{KindList, KindDot, KindLine, KindList, KindEllipse, KindText}
	if len(rec.kinds) != len(want) {
		t.Fatalf("visited %v, want %v", rec.kinds, want)
	}
	for i := range want {
		if rec.kinds[i] != want[i] {
			t.Fatalf("visited %v, want %v", rec.kinds, want)
		}
	}
}

func TestAcceptGroupBeforeChildren(t *testing.T) {
	g := NewGroup()
	g.Add(NewDot(Pt(0, 0)))
	g.SetClip(NewClosedPath(Pt(0, 0), Pt(1, 0), Pt(1, 1)))

	rec := &recordingVisitor{}
	if err := g.Accept(rec); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if len(rec.kinds) != 2 || rec.kinds[0] != KindGroup || rec.kinds[1] != KindDot {
		t.Fatalf("visited %v, want group before child", rec.kinds)
	}
	if len(rec.clips) != 1 || rec.clips[0] == nil {
		t.Error("clip not visible at group visit time")
	}
}

func TestAcceptStopsOnError(t *testing.T) {
	scene := Mix(
		NewDot(Pt(0, 0)),
		NewLine(Pt(0, 0), Pt(1, 0)),
		NewText(Pt(0, 0), "never reached"),
	)

	boom := errors.New("boom")
	rec := &recordingVisitor{failOn: KindLine, fail: boom}
	if err := scene.Accept(rec); !errors.Is(err, boom) {
		t.Fatalf("Accept error = %v, want boom", err)
	}
	for _, k := range rec.kinds {
		if k == KindText {
			t.Error("traversal continued past the failing child")
		}
	}
}

func TestRenderDoesNotMutateScene(t *testing.T) {
	scene := Mix(NewLine(Pt(0, 0), Pt(1, 0)))
	before := scene.Bounds(BoundsGeometry)

	rec := &recordingVisitor{}
	if err := Render(scene, Scale(100, 100), rec); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := scene.Bounds(BoundsGeometry); !rectsClose(got, before) {
		t.Errorf("device transform leaked into the scene: %+v", got)
	}
	if len(rec.kinds) != 2 {
		t.Errorf("visited %v", rec.kinds)
	}
}

func TestRenderAppliesDeviceTransform(t *testing.T) {
	scene := NewDot(Pt(1, 1))

	var seen Point
	watch := &dotWatcher{f: func(d *DotShape) { seen = d.Center }}
	if err := Render(scene, Translate(10, 0), watch); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if seen != Pt(11, 1) {
		t.Errorf("visited dot at %v, want (11,1)", seen)
	}
}

// dotWatcher is a visitor caring only about dots.
type dotWatcher struct {
	recordingVisitor
	f func(*DotShape)
}

func (p *dotWatcher) VisitDot(d *DotShape) error {
	p.f(d)
	return nil
}
