package diagram

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Gravity is the gravitational acceleration used to make depth and height
// dimensionless, in m/s².
const Gravity = 9.81

// Marker defaults match a plain orange down-pointing triangle.
const (
	DefaultMarker = "v"
	DefaultSize   = 50
)

var (
	DefaultColor     color.Color = color.RGBA{R: 255, G: 165, A: 255}
	DefaultEdgeColor color.Color = color.Black
)

// Style controls how a wave sample is drawn. Size is the marker area in pt².
type Style struct {
	Color     color.Color
	Marker    string
	EdgeColor color.Color
	Size      float64
}

func (s Style) withDefaults() Style {
	if s.Color == nil {
		s.Color = DefaultColor
	}
	if s.Marker == "" {
		s.Marker = DefaultMarker
	}
	if s.EdgeColor == nil {
		s.EdgeColor = DefaultEdgeColor
	}
	if s.Size == 0 {
		s.Size = DefaultSize
	}
	return s
}

// WavePoint is a single observed or designed wave: water depth d (m), period
// T (s) and height H (m).
type WavePoint struct {
	Depth  float64
	Period float64
	Height float64
	Label  string
	Style  Style
}

// Point returns the dimensionless depth d/(gT²) and height H/(gT²).
// Nothing is validated: T = 0 gives ±Inf or NaN.
func Point(d, T, H float64) (x, y float64) {
	gt2 := Gravity * (T * T)
	return d / gt2, H / gt2
}

// Dimensionless returns the diagram coordinates of w.
func (w WavePoint) Dimensionless() (x, y float64) {
	return Point(w.Depth, w.Period, w.Height)
}

// Wave is a wave sample placed on the diagram.
type Wave struct {
	WavePoint
	X, Y float64

	glyph draw.GlyphStyle
}

// Plot implements plot.Plotter. Samples a log axis cannot show are skipped.
func (w *Wave) Plot(c draw.Canvas, p *plot.Plot) {
	if !drawable(w.X, w.Y) {
		return
	}
	trX, trY := p.Transforms(&c)
	pt := vg.Point{X: trX(w.X), Y: trY(w.Y)}
	if !c.Contains(pt) {
		return
	}
	c.DrawGlyph(w.glyph, pt)
}

// Thumbnail implements plot.Thumbnailer for the legend.
func (w *Wave) Thumbnail(c *draw.Canvas) {
	c.DrawGlyph(w.glyph, c.Center())
}

// drawable reports whether (x, y) has a place on log-log axes.
func drawable(x, y float64) bool {
	return x > 0 && y > 0 && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}
