// Package scene2d provides a programmatic builder for 2D vector scenes.
//
// # Overview
//
// scene2d models a scene as a tree of geometric shapes (dots, lines,
// arrows, polylines, ellipses, Bezier chains, text anchors and
// composites) built with composable affine operations. The finished
// tree is traversed through a visitor to emit device-independent
// drawing instructions; serializers for concrete output formats live
// outside this package and only need read access to geometry and
// style.
//
// # Quick Start
//
//	import "github.com/gogpu/scene2d"
//
//	list := scene2d.NewShapeList()
//	list.Add(scene2d.NewCircle(scene2d.Pt(0, 0), 10))
//	list.Append(scene2d.NewPolygon([]scene2d.Point{
//		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 10, Y: 15},
//	}), scene2d.DirRight, scene2d.AlignMid, 5)
//	list.Transform(scene2d.RotateAbout(math.Pi/8, list.Bounds(scene2d.BoundsGeometry).Center()))
//
// # Coordinate convention
//
// Scene coordinates are y-up: Rect stores its Top as the maximum
// y-coordinate and heights grow downward from it. Rotations are
// counter-clockwise for positive angles; RotateScreen provides the
// mirrored convention for y-down device spaces.
//
// # Ownership
//
// Containers own deep clones of inserted shapes. Mutating a shape
// after insertion never affects the stored copy, and no shape instance
// is ever shared between two containers.
//
// # Architecture
//
// The library is organized into:
//   - Geometry primitives: Point, Vec2, Matrix, Rect, Line, CubicBez
//   - Shape model: Shape variants, ShapeList, Group, Visitor
//   - Stroke geometry: Stroke, Dash, Outline
//   - sketch/: hand-drawn redraw and hachure fills
package scene2d
