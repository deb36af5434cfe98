// Command scene2ddemo builds a demonstration scene with the scene2d
// library and reports its structure. Style defaults are taken from
// SCENE2D_* environment variables, for example:
//
//	SCENE2D_PEN_COLOR=steelblue scene2ddemo -sketchy
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	scene "github.com/gogpu/scene2d"
	"github.com/gogpu/scene2d/sketch"
)

func main() {
	var (
		sketchy = flag.Bool("sketchy", false, "redraw the scene in a hand-drawn style")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		scene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := scene.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	scene.SetDefaultConfig(cfg)

	var root scene.Shape = buildScene()
	if *sketchy {
		root = sketch.Rough(root, sketch.Options{
			Mode:   sketch.StraightHachure,
			Repeat: 2,
		})
	}

	var stats sceneStats
	if err := scene.Render(root, scene.Identity(), &stats); err != nil {
		log.Fatalf("Scene walk failed: %v", err)
	}

	box := root.Bounds(scene.BoundsStroke)
	log.Printf("Scene holds %d shapes covering %.1fx%.1f units\n",
		stats.leaves, box.Width, box.Height)
}

func buildScene() *scene.ShapeList {
	root := scene.NewShapeList()

	// A row of tiles with shrinking rotated squares stacked below.
	tiles := scene.NewShapeList()
	tiles.Tile(scene.NewPolygon([]scene.Point{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20},
	}), 4, 2, 5)
	root.Add(tiles)

	spiral := scene.NewShapeList()
	spiral.AddDuplicates(scene.NewPolygon([]scene.Point{
		{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 30}, {X: 0, Y: 30},
	}), 6, 40, 0, 0.85, 0.85, math.Pi/12)
	root.Append(spiral, scene.DirBelow, scene.AlignMin, 10)

	// Annotation with an arrow pointing at the spiral.
	label := scene.NewShapeList()
	label.Add(scene.NewText(scene.Pt(0, 0), "shrinking squares"))
	label.Add(scene.NewArrow(scene.Pt(0, -5), scene.Pt(0, -25)))
	root.Append(label, scene.DirBelow, scene.AlignMid, 10)

	// A clipped wave group.
	wave := scene.NewGroup()
	wave.Add(scene.NewBezier([]scene.CubicBez{
		{P0: scene.Pt(0, 0), P1: scene.Pt(25, 25), P2: scene.Pt(50, -25), P3: scene.Pt(75, 0)},
		{P0: scene.Pt(75, 0), P1: scene.Pt(100, 25), P2: scene.Pt(125, -25), P3: scene.Pt(150, 0)},
	}))
	wave.SetClip(scene.NewClosedPath(
		scene.Pt(10, -30), scene.Pt(140, -30), scene.Pt(140, 30), scene.Pt(10, 30)))
	root.Append(wave, scene.DirRight, scene.AlignMid, 15)

	return root
}

// sceneStats counts leaf shapes during traversal.
type sceneStats struct {
	leaves int
}

func (s *sceneStats) VisitDot(*scene.DotShape) error           { s.leaves++; return nil }
func (s *sceneStats) VisitLine(*scene.LineShape) error         { s.leaves++; return nil }
func (s *sceneStats) VisitArrow(*scene.ArrowShape) error       { s.leaves++; return nil }
func (s *sceneStats) VisitPolyline(*scene.PolylineShape) error { s.leaves++; return nil }
func (s *sceneStats) VisitEllipse(*scene.EllipseShape) error   { s.leaves++; return nil }
func (s *sceneStats) VisitBezier(*scene.BezierShape) error     { s.leaves++; return nil }
func (s *sceneStats) VisitText(*scene.TextShape) error         { s.leaves++; return nil }
func (s *sceneStats) VisitList(*scene.ShapeList) error         { return nil }
func (s *sceneStats) VisitGroup(*scene.Group) error            { return nil }
