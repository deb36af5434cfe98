// Package sketch turns finished scene shapes into hand-drawn looking
// composites: stroked edges are redrawn as slightly perturbed copies,
// and fillable interiors are covered with hachure line patterns.
//
// Randomness comes from the process-wide source of math/rand/v2 unless
// the caller supplies a fixed-seed source in Options, so output is
// non-deterministic by default.
package sketch

import (
	"math"
	"math/rand/v2"

	scene "github.com/gogpu/scene2d"
)

// FillingMode selects how Rough fills closed shapes.
type FillingMode int

const (
	// NoFilling leaves interiors empty.
	NoFilling FillingMode = iota
	// PlainFilling keeps the shape's ordinary fill underneath the
	// sketched edges.
	PlainFilling
	// StraightHachure fills with parallel straight lines.
	StraightHachure
	// CrossingHachure fills with two perpendicular hachure passes.
	CrossingHachure
	// SketchyHachure fills with hachure lines that are themselves
	// perturbed.
	SketchyHachure
	// SketchyCrossingHachure combines crossing passes with
	// perturbation.
	SketchyCrossingHachure
)

// Options configures the Rough filter.
type Options struct {
	// Repeat is the number of perturbed copies drawn per edge.
	// Values below 1 are treated as 1.
	Repeat int

	// Mode selects the interior filling.
	Mode FillingMode

	// Angle is the hachure direction in radians.
	Angle float64

	// Spacing is the distance between neighboring hachure lines.
	// Values <= 0 fall back to 1.
	Spacing float64

	// Jitter bounds the random endpoint offset as a fraction of the
	// edge length. Zero falls back to 0.05.
	Jitter float64

	// Rand is the random source for perturbation. nil uses the
	// process-wide math/rand/v2 source.
	Rand *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.Repeat < 1 {
		o.Repeat = 1
	}
	if o.Spacing <= 0 {
		o.Spacing = 1
	}
	if o.Jitter == 0 {
		o.Jitter = 0.05
	}
	return o
}

func (o Options) random() float64 {
	if o.Rand != nil {
		return o.Rand.Float64()
	}
	return rand.Float64()
}

// Rough produces a new composite that redraws s in a hand-drawn
// manner. The input shape is never mutated; composites are walked
// recursively and group clips are preserved.
func Rough(s scene.Shape, opts Options) scene.Shape {
	opts = opts.withDefaults()
	out := scene.NewShapeList()
	roughInto(out, s, opts)
	return out
}

func roughInto(out *scene.ShapeList, s scene.Shape, opts Options) {
	switch sh := s.(type) {
	case *scene.ShapeList:
		for i := 0; i < sh.Len(); i++ {
			roughInto(out, sh.At(i), opts)
		}

	case *scene.Group:
		g := scene.NewGroup()
		if sh.Clip() != nil {
			g.SetClip(sh.Clip())
		}
		for i := 0; i < sh.Len(); i++ {
			roughInto(&g.ShapeList, sh.At(i), opts)
		}
		out.Add(g)

	case *scene.DotShape, *scene.TextShape:
		// No stroked edges to perturb.
		out.Add(sh)

	default:
		roughLeaf(out, s, opts)
	}
}

// roughLeaf sketches a non-composite shape: fill first (so hachure
// paints under the edges), then the perturbed edge copies.
func roughLeaf(out *scene.ShapeList, s scene.Shape, opts Options) {
	style := s.Style().Clone()

	if closed, ok := fillable(s); ok && closed {
		switch opts.Mode {
		case NoFilling:
		case PlainFilling:
			filled := s.Clone()
			filled.Style().Pen = nil
			out.Add(filled)
		case StraightHachure:
			addHachure(out, s, opts, false, false)
		case CrossingHachure:
			addHachure(out, s, opts, true, false)
		case SketchyHachure:
			addHachure(out, s, opts, false, true)
		case SketchyCrossingHachure:
			addHachure(out, s, opts, true, true)
		}
	}

	lineStyle := style.Clone()
	lineStyle.Fill = nil
	for _, e := range edgesOf(s) {
		addJittered(out, e, lineStyle, opts)
	}
}

// addJittered inserts opts.Repeat perturbed copies of the edge.
func addJittered(out *scene.ShapeList, e scene.Line, style scene.Style, opts Options) {
	length := e.Length()
	if length < 1e-12 {
		return
	}
	bound := opts.Jitter * length
	for i := 0; i < opts.Repeat; i++ {
		p0 := jitterPoint(e.P0, bound, opts)
		p1 := jitterPoint(e.P1, bound, opts)
		out.Add(scene.NewLine(p0, p1, style))
	}
}

func jitterPoint(p scene.Point, bound float64, opts Options) scene.Point {
	return scene.Point{
		X: p.X + bound*(2*opts.random()-1),
		Y: p.Y + bound*(2*opts.random()-1),
	}
}

// addHachure fills the shape interior with hachure segments,
// optionally adding a perpendicular crossing pass and optionally
// perturbing the segments themselves.
func addHachure(out *scene.ShapeList, s scene.Shape, opts Options, crossing, sketchy bool) {
	style := s.Style().Clone()
	style.Fill = nil

	angles := []float64{opts.Angle}
	if crossing {
		angles = append(angles, opts.Angle+math.Pi/2)
	}
	for _, angle := range angles {
		for _, seg := range hachureSegments(s, angle, opts.Spacing) {
			if sketchy {
				addJittered(out, seg, style, opts)
			} else {
				out.Add(scene.NewLine(seg.P0, seg.P1, style))
			}
		}
	}
}

// fillable reports whether the shape has a closed interior.
func fillable(s scene.Shape) (closed, ok bool) {
	switch sh := s.(type) {
	case *scene.PolylineShape:
		return sh.Path().Closed(), true
	case *scene.EllipseShape:
		return true, true
	default:
		return false, false
	}
}

// edgesOf returns the stroked edges of a leaf shape. Curved shapes are
// sampled: ellipses as 32-gons, Bezier chains flattened with a small
// tolerance relative to their size.
func edgesOf(s scene.Shape) []scene.Line {
	switch sh := s.(type) {
	case *scene.LineShape:
		return []scene.Line{sh.Seg}

	case *scene.ArrowShape:
		w1, w2 := sh.HeadPoints()
		return []scene.Line{
			sh.Seg,
			{P0: sh.Seg.P1, P1: w1},
			{P0: sh.Seg.P1, P1: w2},
		}

	case *scene.PolylineShape:
		return pathEdges(sh.Path())

	case *scene.EllipseShape:
		return pathEdges(sh.ToPolygon(32))

	case *scene.BezierShape:
		b := sh.Bounds(scene.BoundsGeometry)
		tol := math.Max(b.Width, b.Height) / 200
		if tol <= 0 {
			tol = 0.01
		}
		return pathEdges(sh.Flatten(tol))

	default:
		return nil
	}
}

func pathEdges(p *scene.Path) []scene.Line {
	edges := make([]scene.Line, 0, p.EdgeCount())
	for i := 0; i < p.EdgeCount(); i++ {
		edges = append(edges, p.Edge(i))
	}
	return edges
}
