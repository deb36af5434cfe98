package scene2d

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// LineCap specifies the shape of stroked open-path endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a flat cap extended by half the width.
	LineCapSquare
)

// LineJoin specifies the shape of stroked interior vertices.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Style carries the drawing attributes of a shape.
// Serializers read it through the visitor; the geometry core itself only
// consults Width, Cap, Join and MiterLimit (for stroke-aware bounds and
// outline computation).
type Style struct {
	// Pen is the stroke color.
	Pen color.Color

	// Fill is the interior color. nil means no fill.
	Fill color.Color

	// Width is the stroke width in scene units.
	Width float64

	// Cap is the shape of open endpoints. Default: LineCapButt.
	Cap LineCap

	// Join is the shape of interior vertices. Default: LineJoinMiter.
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become
	// bevels. Default: 4.0 (matches SVG).
	MiterLimit float64

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash *Dash
}

// DefaultStyleValues returns the built-in style: a solid 1-unit black
// line with butt caps, miter joins and a white fill.
func DefaultStyleValues() Style {
	return Style{
		Pen:        colornames.Black,
		Fill:       colornames.White,
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
		Dash:       nil,
	}
}

// WithPen returns a copy of the Style with the given pen color.
func (s Style) WithPen(c color.Color) Style {
	s.Pen = c
	return s
}

// WithFill returns a copy of the Style with the given fill color.
func (s Style) WithFill(c color.Color) Style {
	s.Fill = c
	return s
}

// WithWidth returns a copy of the Style with the given stroke width.
func (s Style) WithWidth(w float64) Style {
	s.Width = w
	return s
}

// WithCap returns a copy of the Style with the given line cap.
func (s Style) WithCap(c LineCap) Style {
	s.Cap = c
	return s
}

// WithJoin returns a copy of the Style with the given line join.
func (s Style) WithJoin(j LineJoin) Style {
	s.Join = j
	return s
}

// WithMiterLimit returns a copy of the Style with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s Style) WithMiterLimit(limit float64) Style {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the Style with the given dash pattern.
// Pass nil to remove dashing and return to solid lines.
func (s Style) WithDash(dash *Dash) Style {
	if dash == nil {
		s.Dash = nil
	} else {
		s.Dash = dash.Clone()
	}
	return s
}

// Stroke returns the stroke configuration portion of the style, the
// input consumed by Outline.
func (s Style) Stroke() Stroke {
	return Stroke{
		Width:      s.Width,
		Cap:        s.Cap,
		Join:       s.Join,
		MiterLimit: s.MiterLimit,
		Dash:       s.Dash,
	}
}

// Clone creates a deep copy of the Style.
func (s Style) Clone() Style {
	result := s
	if s.Dash != nil {
		result.Dash = s.Dash.Clone()
	}
	return result
}
