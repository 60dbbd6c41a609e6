package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrUnknownMarker is returned for a marker code without a glyph.
var ErrUnknownMarker = errors.New("unknown marker")

// edgeWidth is the outline width of filled markers.
var edgeWidth = vg.Points(1)

// Markers lists the supported marker codes.
var Markers = []string{"o", "v", "^", "<", ">", "s", "d", "D", "p", "h", "*"}

// regular returns the vertex angles, in degrees, of a regular n-gon whose first
// vertex sits at start.
func regular(n int, start float64) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = start + float64(i)*360/float64(n)
	}
	return a
}

// markerGlyph fills a marker shape with the glyph color and outlines it with
// the edge color.
type markerGlyph struct {
	code string
	edge color.Color
}

func newMarkerGlyph(code string, edge color.Color) (markerGlyph, error) {
	for _, m := range Markers {
		if m == code {
			return markerGlyph{code: code, edge: edge}, nil
		}
	}
	return markerGlyph{}, fmt.Errorf("%w: %q", ErrUnknownMarker, code)
}

// DrawGlyph implements draw.GlyphDrawer.
func (g markerGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	path := g.path(sty.Radius, pt)
	c.SetColor(sty.Color)
	c.Fill(path)
	c.SetLineStyle(draw.LineStyle{Color: g.edge, Width: edgeWidth})
	c.Stroke(path)
}

func (g markerGlyph) path(r vg.Length, pt vg.Point) vg.Path {
	var p vg.Path
	if g.code == "o" {
		p.Move(vg.Point{X: pt.X + r, Y: pt.Y})
		p.Arc(pt, r, 0, 2*math.Pi)
		p.Close()
		return p
	}

	var pts []vg.Point
	switch g.code {
	case "v":
		pts = ring(pt, r, regular(3, 90+180))
	case "^":
		pts = ring(pt, r, regular(3, 90))
	case "<":
		pts = ring(pt, r, regular(3, 180))
	case ">":
		pts = ring(pt, r, regular(3, 0))
	case "s":
		pts = ring(pt, r, regular(4, 45))
	case "D":
		pts = ring(pt, r, regular(4, 90))
	case "d":
		pts = ring(pt, r, regular(4, 90))
		for i := range pts {
			pts[i].X = pt.X + (pts[i].X-pt.X)*0.6
		}
	case "p":
		pts = ring(pt, r, regular(5, 90))
	case "h":
		pts = ring(pt, r, regular(6, 90))
	case "*":
		outer := ring(pt, r, regular(5, 90))
		inner := ring(pt, r*0.382, regular(5, 90+36))
		for i := range outer {
			pts = append(pts, outer[i], inner[i])
		}
	}
	for i, q := range pts {
		if i == 0 {
			p.Move(q)
			continue
		}
		p.Line(q)
	}
	p.Close()
	return p
}

func ring(center vg.Point, r vg.Length, degrees []float64) []vg.Point {
	pts := make([]vg.Point, len(degrees))
	for i, d := range degrees {
		rad := d * math.Pi / 180
		pts[i] = vg.Point{
			X: center.X + r*vg.Length(math.Cos(rad)),
			Y: center.Y + r*vg.Length(math.Sin(rad)),
		}
	}
	return pts
}

// markerRadius converts a marker area in pt² to a glyph radius.
func markerRadius(area float64) vg.Length {
	return vg.Points(math.Sqrt(math.Abs(area)) / 2)
}
