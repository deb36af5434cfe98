package sketch

import (
	"math"
	"sort"

	scene "github.com/gogpu/scene2d"
)

// hachureEpsilon absorbs floating-point drift when a scan line grazes
// the shape boundary, so tangent lines still produce their (possibly
// degenerate) segment.
const hachureEpsilon = 1e-9

// hachureSegments computes the family of parallel segments covering
// the interior of a fillable shape at the given angle and spacing.
// Polygon interiors are clipped by even-odd edge intersection; ellipse
// chords are computed analytically from the parametric form.
func hachureSegments(s scene.Shape, angle, spacing float64) []scene.Line {
	switch sh := s.(type) {
	case *scene.PolylineShape:
		return polygonHachure(sh.Path(), angle, spacing)
	case *scene.EllipseShape:
		return ellipseHachure(sh, angle, spacing)
	}
	return nil
}

// polygonHachure scans a closed path (holes subtracted) with
// horizontal lines in a frame rotated by -angle, then rotates the
// resulting segments back.
func polygonHachure(p *scene.Path, angle, spacing float64) []scene.Line {
	if !p.Closed() || p.Len() < 3 {
		return nil
	}

	work := p.Clone()
	work.Transform(scene.Rotate(-angle))
	back := scene.Rotate(angle)

	bounds := work.Bounds()
	var out []scene.Line
	for i := 0; ; i++ {
		y := bounds.Bottom() + float64(i)*spacing
		if y > bounds.Top+hachureEpsilon {
			break
		}

		xs := scanCrossings(work, y)
		for j := 0; j+1 < len(xs); j += 2 {
			if xs[j+1]-xs[j] < hachureEpsilon {
				// Corner graze, nothing to draw.
				continue
			}
			p0 := back.TransformPoint(scene.Pt(xs[j], y))
			p1 := back.TransformPoint(scene.Pt(xs[j+1], y))
			out = append(out, scene.Line{P0: p0, P1: p1})
		}
	}

	scene.Logger().Debug("hachure fill",
		"kind", "polygon", "segments", len(out))
	return out
}

// scanCrossings returns the sorted x-coordinates where the horizontal
// line at height y crosses the path boundary, holes included. Even-odd
// pairing of the result yields the interior sub-segments.
func scanCrossings(p *scene.Path, y float64) []float64 {
	var xs []float64
	collect := func(path *scene.Path) {
		for i := 0; i < path.EdgeCount(); i++ {
			e := path.Edge(i)
			if (e.P0.Y > y) != (e.P1.Y > y) {
				t := (y - e.P0.Y) / (e.P1.Y - e.P0.Y)
				xs = append(xs, e.P0.X+t*(e.P1.X-e.P0.X))
			}
		}
	}
	collect(p)
	for _, h := range p.Holes() {
		collect(h)
	}
	sort.Float64s(xs)
	return xs
}

// ellipseHachure computes exact chords of the ellipse along scan lines
// in a frame rotated by -angle. In that frame the ellipse is still an
// exact ellipse (the parametric axes transform linearly), and a
// horizontal line at height y meets it where
//
//	Uy*cos(t) + Vy*sin(t) = y - Cy
//
// which solves as R*sin(t+phi) = y-Cy with R = hypot(Uy, Vy) and
// phi = atan2(Uy, Vy).
func ellipseHachure(e *scene.EllipseShape, angle, spacing float64) []scene.Line {
	work := e.Clone().(*scene.EllipseShape)
	work.Transform(scene.Rotate(-angle))
	back := scene.Rotate(angle)

	r := math.Hypot(work.U.Y, work.V.Y)
	if r < hachureEpsilon {
		return nil
	}
	phi := math.Atan2(work.U.Y, work.V.Y)

	bottom := work.Center.Y - r
	var out []scene.Line
	for i := 0; ; i++ {
		y := bottom + float64(i)*spacing
		if y > work.Center.Y+r+hachureEpsilon {
			break
		}

		c := y - work.Center.Y
		if math.Abs(c) > r+hachureEpsilon {
			continue
		}
		s := math.Max(-1, math.Min(1, c/r))
		t1 := math.Asin(s) - phi
		t2 := math.Pi - math.Asin(s) - phi

		p0 := back.TransformPoint(work.PointAt(t1))
		p1 := back.TransformPoint(work.PointAt(t2))
		out = append(out, scene.Line{P0: p0, P1: p1})
	}

	scene.Logger().Debug("hachure fill",
		"kind", "ellipse", "segments", len(out))
	return out
}
