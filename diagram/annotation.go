package diagram

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ArrowHeads selects which ends of an arrow carry a head.
type ArrowHeads int

const (
	HeadEnd  ArrowHeads = iota + 1 // "->"
	HeadBoth                       // "<->"
)

var (
	arrowHeadLength = vg.Points(7)
	arrowHeadWidth  = vg.Points(2.5)

	// labelPad is the gap kept between a label and the arrow leaving it.
	labelPad = vg.Points(3)
)

// Arrow is drawn in data coordinates from From to To.
type Arrow struct {
	From, To plotter.XY
	Heads    ArrowHeads
	Line     draw.LineStyle
}

// Annotation is a piece of text, an arrow, or both, placed in data
// coordinates. A removed annotation stays in the plot but draws nothing.
type Annotation struct {
	Text  string
	At    plotter.XY
	Style text.Style
	Arrow *Arrow

	// Along, when set, rotates the text to follow the on-screen direction
	// from Along[0] to Along[1]; the angle depends on the canvas size.
	Along *[2]plotter.XY

	removed bool
}

// Remove hides the annotation.
func (a *Annotation) Remove() { a.removed = true }

// Removed reports whether Remove has been called.
func (a *Annotation) Removed() bool { return a.removed }

// Plot implements plot.Plotter. An arrow that shares its annotation with a
// label starts at the edge of the label's box rather than under the text.
func (a *Annotation) Plot(c draw.Canvas, p *plot.Plot) {
	if a.removed {
		return
	}
	trX, trY := p.Transforms(&c)
	if a.Arrow != nil {
		if from, to, ok := a.arrowEnds(trX, trY); ok {
			a.Arrow.stroke(&c, from, to)
		}
	}
	if a.Text == "" || !drawable(a.At.X, a.At.Y) {
		return
	}
	sty := a.Style
	if a.Along != nil {
		sty.Rotation = slopeAngle(a.Along[0], a.Along[1], trX, trY)
	}
	c.FillText(sty, vg.Point{X: trX(a.At.X), Y: trY(a.At.Y)}, a.Text)
}

// arrowEnds is the display-space arrow, with its tail clipped to the label
// box when the annotation has text.
func (a *Annotation) arrowEnds(trX, trY func(float64) vg.Length) (from, to vg.Point, ok bool) {
	ar := a.Arrow
	if !drawable(ar.From.X, ar.From.Y) || !drawable(ar.To.X, ar.To.Y) {
		return from, to, false
	}
	from = vg.Point{X: trX(ar.From.X), Y: trY(ar.From.Y)}
	to = vg.Point{X: trX(ar.To.X), Y: trY(ar.To.Y)}
	if a.Text == "" || !drawable(a.At.X, a.At.Y) {
		return from, to, true
	}
	box := labelBox(a.Style, vg.Point{X: trX(a.At.X), Y: trY(a.At.Y)}, a.Text)
	if inBox(box, to) {
		return from, to, false
	}
	return clipTail(from, to, box), to, true
}

// labelBox is the unrotated box text occupies when drawn at pt, grown by
// labelPad on every side.
func labelBox(sty text.Style, pt vg.Point, txt string) vg.Rectangle {
	w, h := sty.Width(txt), sty.Height(txt)
	minX := pt.X + vg.Length(sty.XAlign)*w
	minY := pt.Y + vg.Length(sty.YAlign)*h
	return vg.Rectangle{
		Min: vg.Point{X: minX - labelPad, Y: minY - labelPad},
		Max: vg.Point{X: minX + w + labelPad, Y: minY + h + labelPad},
	}
}

func inBox(r vg.Rectangle, p vg.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// clipTail moves from towards to until it leaves box. A tail already outside
// the box is returned as is.
func clipTail(from, to vg.Point, box vg.Rectangle) vg.Point {
	if !inBox(box, from) {
		return from
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	t := math.Inf(1)
	if dx > 0 {
		t = math.Min(t, float64((box.Max.X-from.X)/dx))
	} else if dx < 0 {
		t = math.Min(t, float64((box.Min.X-from.X)/dx))
	}
	if dy > 0 {
		t = math.Min(t, float64((box.Max.Y-from.Y)/dy))
	} else if dy < 0 {
		t = math.Min(t, float64((box.Min.Y-from.Y)/dy))
	}
	if math.IsInf(t, 1) {
		return from
	}
	return vg.Point{X: from.X + vg.Length(t)*dx, Y: from.Y + vg.Length(t)*dy}
}

// slopeAngle is the display-space angle in radians of the segment from p to q.
func slopeAngle(p, q plotter.XY, trX, trY func(float64) vg.Length) float64 {
	if !drawable(p.X, p.Y) || !drawable(q.X, q.Y) {
		return 0
	}
	dx := trX(q.X) - trX(p.X)
	dy := trY(q.Y) - trY(p.Y)
	return math.Atan2(float64(dy), float64(dx))
}

func (ar *Arrow) stroke(c *draw.Canvas, from, to vg.Point) {
	c.StrokeLine2(ar.Line, from.X, from.Y, to.X, to.Y)
	head(c, ar.Line, from, to)
	if ar.Heads == HeadBoth {
		head(c, ar.Line, to, from)
	}
}

// head fills an arrow head at tip pointing away from tail.
func head(c *draw.Canvas, sty draw.LineStyle, tail, tip vg.Point) {
	dx, dy := float64(tip.X-tail.X), float64(tip.Y-tail.Y)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	ux, uy := vg.Length(dx/n), vg.Length(dy/n)
	base := vg.Point{X: tip.X - ux*arrowHeadLength, Y: tip.Y - uy*arrowHeadLength}
	c.FillPolygon(sty.Color, []vg.Point{
		tip,
		{X: base.X - uy*arrowHeadWidth, Y: base.Y + ux*arrowHeadWidth},
		{X: base.X + uy*arrowHeadWidth, Y: base.Y - ux*arrowHeadWidth},
	})
}
