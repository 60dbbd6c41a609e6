// Package diagram draws the Le Méhauté diagram: the validity regions of the
// classic water-wave theories on log-log axes of dimensionless depth d/(gT²)
// and height H/(gT²), with user-supplied waves plotted on top.
package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"go.uber.org/zap"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Region boundaries along d/(gT²). They are empirical and not derived from the
// curve data.
const (
	ShallowIntermediate = 0.00242087554332614
	IntermediateDeep    = 0.07928081279747913
)

// labelDrop places a wave label below its marker as a fraction of y.
const labelDrop = 0.2

// ErrNoBackend is returned by Show when no display backend is configured.
var ErrNoBackend = errors.New("no display backend")

// Limits are the axis box and the region boundaries.
type Limits struct {
	Left, Right, Bottom, Top              float64
	ShallowIntermediate, IntermediateDeep float64
}

// DefaultLimits is the axis box of the diagram.
var DefaultLimits = Limits{
	Left:                1e-4,
	Right:               1,
	Bottom:              1e-5,
	Top:                 0.1,
	ShallowIntermediate: ShallowIntermediate,
	IntermediateDeep:    IntermediateDeep,
}

var (
	curveColor  = rgbf(0.3, 0.3, 0.3)
	textColor   = rgbf(0.3, 0.3, 0.3)
	regionColor = rgbf(0.8, 0.8, 0.8)

	// Band fills are all white for now; they are kept as separate layers so
	// they can be tinted.
	bandColors = [3]color.Color{color.White, color.White, color.White}

	dashes = []vg.Length{vg.Points(5), vg.Points(3)}

	textSize      = vg.Points(10)
	waveLabelSize = vg.Points(9)
	axisLabelSize = vg.Points(18)
)

// Backend displays a rendered diagram.
type Backend interface {
	Show(r *Renderer) error
}

// BackendFunc adapts a function to Backend.
type BackendFunc func(r *Renderer) error

// Show implements Backend.
func (f BackendFunc) Show(r *Renderer) error { return f(r) }

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlot draws the diagram onto an existing plot instead of a new one.
func WithPlot(p *plot.Plot) Option {
	return func(r *Renderer) { r.plot = p }
}

// WithSize sets the figure size used by Save and WriteTo.
func WithSize(width, height vg.Length) Option {
	return func(r *Renderer) { r.width, r.height = width, height }
}

// WithDPI sets the raster resolution used by Save and WriteTo.
func WithDPI(dpi int) Option {
	return func(r *Renderer) { r.dpi = dpi }
}

// WithCurves uses set instead of the embedded curve resource.
func WithCurves(set CurveSet) Option {
	return func(r *Renderer) { r.curveSet = &set }
}

// WithCurvesFile loads the curve set from a YAML file at construction.
func WithCurvesFile(path string) Option {
	return func(r *Renderer) { r.curvesFile = path }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithBackend sets the display used by Show.
func WithBackend(b Backend) Option {
	return func(r *Renderer) { r.backend = b }
}

// Renderer owns a plot holding the diagram, the waves added to it and the
// registry of their label annotations.
type Renderer struct {
	plot          *plot.Plot
	width, height vg.Length
	dpi           int

	curveSet   *CurveSet
	curvesFile string
	curves     CurveSet
	limits     Limits
	orders     [4]float64

	// base holds the construction labels and arrows, curveLines the
	// boundary curves, both in draw order.
	base       []*Annotation
	curveLines []*plotter.Line

	waves        []*Wave
	annotations  []*Annotation
	baseLegend   plot.Legend
	legendLabels []string
	legendOn     bool

	backend Backend
	log     *zap.Logger
}

// New builds the diagram. It fails when the curve resource cannot be read or
// does not have the expected shape.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		width:  12 * vg.Inch,
		height: 8 * vg.Inch,
		dpi:    100,
		limits: DefaultLimits,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	switch {
	case r.curveSet != nil:
		r.curves = *r.curveSet
	case r.curvesFile != "":
		r.curves, err = LoadCurvesFile(r.curvesFile)
	default:
		r.curves, err = DefaultCurves()
	}
	if err != nil {
		return nil, err
	}

	if r.plot == nil {
		r.plot = plot.New()
	}
	r.baseLegend = r.plot.Legend

	for i := range r.orders {
		r.orders[i] = r.curves[i].MaxY()
	}

	if err := r.drawBase(); err != nil {
		return nil, err
	}
	r.formatAxes()
	r.log.Debug("diagram constructed",
		zap.Float64s("order_limits", r.orders[:]),
		zap.Float64("width_in", float64(r.width/vg.Inch)),
		zap.Float64("height_in", float64(r.height/vg.Inch)),
		zap.Int("dpi", r.dpi))
	return r, nil
}

// logMid is the midpoint of a and b on a log axis.
func logMid(a, b float64) float64 {
	return math.Pow(10, (math.Log10(a)+math.Log10(b))/2)
}

func sans(size vg.Length) font.Font {
	fnt := plot.DefaultFont
	fnt.Variant = "Sans"
	return font.From(fnt, size)
}

func textStyle(size vg.Length, xa text.XAlignment, ya text.YAlignment) text.Style {
	return text.Style{
		Color:   textColor,
		Font:    sans(size),
		XAlign:  xa,
		YAlign:  ya,
		Handler: plot.DefaultTextHandler,
	}
}

func (r *Renderer) add(ps ...plot.Plotter) { r.plot.Add(ps...) }

func (r *Renderer) addBase(as ...*Annotation) {
	for _, a := range as {
		r.base = append(r.base, a)
		r.add(a)
	}
}

func (r *Renderer) drawBase() error {
	lim := r.limits

	// Bands go first so every other layer draws over them.
	bands := [3][2]float64{
		{lim.Left, lim.ShallowIntermediate},
		{lim.ShallowIntermediate, lim.IntermediateDeep},
		{lim.IntermediateDeep, lim.Right},
	}
	for i, b := range bands {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: b[0], Y: lim.Bottom}, {X: b[1], Y: lim.Bottom},
			{X: b[1], Y: lim.Top}, {X: b[0], Y: lim.Top},
		})
		if err != nil {
			return fmt.Errorf("region band %d: %w", i, err)
		}
		poly.Color = bandColors[i]
		poly.LineStyle.Width = 0
		r.add(poly)
	}

	for _, x := range []float64{lim.ShallowIntermediate, lim.IntermediateDeep} {
		l, err := plotter.NewLine(plotter.XYs{{X: x, Y: lim.Bottom}, {X: x, Y: lim.Top}})
		if err != nil {
			return fmt.Errorf("region boundary: %w", err)
		}
		l.LineStyle = draw.LineStyle{Color: regionColor, Width: vg.Points(1), Dashes: dashes}
		r.add(l)
	}

	for i, c := range r.curves {
		l, err := plotter.NewLine(c.Points)
		if err != nil {
			return fmt.Errorf("%w: curve %d (%s): %v", ErrMalformedCurves, i, c.Name, err)
		}
		l.LineStyle = draw.LineStyle{Color: curveColor, Width: vg.Points(1.25)}
		if i == Stokes2 || i == Stokes3 {
			l.LineStyle.Dashes = dashes
		}
		r.curveLines = append(r.curveLines, l)
		r.add(l)
	}

	r.drawRegionLabels()
	r.drawOrderLabels()
	r.drawCallouts()
	return nil
}

func (r *Renderer) drawRegionLabels() {
	lim := r.limits
	y := lim.Bottom * 1.75
	yArrow := y - y/15
	arrow := draw.LineStyle{Color: textColor, Width: vg.Points(1)}

	regions := []struct {
		text     string
		from, to float64
	}{
		{"SHALLOW\nWATER WAVES", lim.Left, lim.ShallowIntermediate},
		{"INTERMEDIATE WATER\nWAVES", lim.ShallowIntermediate, lim.IntermediateDeep},
		{"DEEP WATER\nWAVES", lim.IntermediateDeep, lim.Right},
	}
	for _, reg := range regions {
		r.addBase(
			&Annotation{
				Text:  reg.text,
				At:    plotter.XY{X: logMid(reg.from, reg.to), Y: y},
				Style: textStyle(textSize, text.XCenter, text.YBottom),
			},
			&Annotation{Arrow: &Arrow{
				From:  plotter.XY{X: reg.from, Y: yArrow},
				To:    plotter.XY{X: reg.to, Y: yArrow},
				Heads: HeadBoth,
				Line:  arrow,
			}},
		)
	}
}

func (r *Renderer) drawOrderLabels() {
	lim := r.limits
	x := lim.Right * 0.9
	r.addBase(
		&Annotation{
			Text:  "LINEAR WAVE THEORY\n(AIRY)",
			At:    plotter.XY{X: lim.IntermediateDeep, Y: logMid(lim.Bottom, r.orders[0])},
			Style: textStyle(textSize, text.XCenter, text.YCenter),
		},
		&Annotation{
			Text:  "STOKES 2nd ORDER",
			At:    plotter.XY{X: x, Y: logMid(r.orders[0], r.orders[1])},
			Style: textStyle(textSize, text.XRight, text.YCenter),
		},
		&Annotation{
			Text:  "STOKES 3rd ORDER",
			At:    plotter.XY{X: x, Y: logMid(r.orders[1], r.orders[2])},
			Style: textStyle(textSize, text.XRight, text.YCenter),
		},
		&Annotation{
			Text:  "STOKES 4th or 5th ORDER",
			At:    plotter.XY{X: x, Y: logMid(r.orders[2], r.orders[3])},
			Style: textStyle(textSize, text.XRight, text.YCenter),
		},
	)
}

func (r *Renderer) drawCallouts() {
	lim := r.limits
	arrow := draw.LineStyle{Color: textColor, Width: vg.Points(1)}

	// The solitary label rides 6.5 % above the curve and follows its slope.
	sol := r.curves[Solitary].Points
	from := plotter.XY{X: sol[solitaryRotFrom].X, Y: sol[solitaryRotFrom].Y * 1.065}
	to := plotter.XY{X: sol[solitaryRotTo].X, Y: sol[solitaryRotTo].Y * 1.065}
	r.addBase(&Annotation{
		Text:  "SOLITARY WAVE THEORY",
		At:    to,
		Style: textStyle(textSize, text.XCenter, text.YBottom),
		Along: &[2]plotter.XY{from, to},
	})

	r.addBase(&Annotation{
		Text:  "CNOIDAL\nWAVES",
		At:    plotter.XY{X: logMid(lim.Left, lim.ShallowIntermediate) * 2.1, Y: lim.Bottom * 20},
		Style: textStyle(textSize, text.XCenter, text.YCenter),
	})

	shallow := plotter.XY{X: logMid(lim.Left, lim.ShallowIntermediate), Y: 0.01}
	r.addBase(&Annotation{
		Text:  "BREAKING CRITERION\n(SOLITARY WAVE)\nH/d = 0.78",
		At:    shallow,
		Style: textStyle(textSize, text.XCenter, text.YBottom),
		Arrow: &Arrow{From: shallow, To: r.curves[Stokes5].Points[breakingCalloutAt], Heads: HeadEnd, Line: arrow},
	})

	inter := plotter.XY{X: logMid(lim.ShallowIntermediate, lim.IntermediateDeep), Y: 0.035}
	deep := plotter.XY{X: logMid(lim.IntermediateDeep, lim.Right), Y: 0.035}
	r.addBase(&Annotation{
		Text:  "DEEP WATER\nBREAKING CRITERION\nH/λ = 0.142",
		At:    inter,
		Style: textStyle(textSize, text.XCenter, text.YBottom),
		Arrow: &Arrow{From: inter, To: deep, Heads: HeadEnd, Line: arrow},
	})
}

func (r *Renderer) formatAxes() {
	p := r.plot
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = decadeTicks{}
	p.Y.Tick.Marker = decadeTicks{hide: []float64{r.limits.Bottom}}

	p.X.Label.Text = "d/(gT²)"
	p.Y.Label.Text = "H/(gT²)"
	p.X.Label.TextStyle.Font = sans(axisLabelSize)
	p.Y.Label.TextStyle.Font = sans(axisLabelSize)
	p.X.Tick.Label.Font = sans(p.X.Tick.Label.Font.Size)
	p.Y.Tick.Label.Font = sans(p.Y.Tick.Label.Font.Size)
	p.Legend.TextStyle.Font = sans(p.Legend.TextStyle.Font.Size)
	r.baseLegend.TextStyle.Font = p.Legend.TextStyle.Font
	p.Y.Label.TextStyle.Rotation = 0
	r.applyLimits()
}

// applyLimits pins the axes; adding plotters widens them otherwise.
func (r *Renderer) applyLimits() {
	p := r.plot
	p.X.Min, p.X.Max = r.limits.Left, r.limits.Right
	p.Y.Min, p.Y.Max = r.limits.Bottom, r.limits.Top
}

// AddWave plots w and labels it just below the marker. The label is tracked so
// Legend can remove it. Only an unknown marker is an error; physically
// meaningless input is drawn, or silently skipped by the log axes.
func (r *Renderer) AddWave(w WavePoint) error {
	w.Style = w.Style.withDefaults()
	glyph, err := newMarkerGlyph(w.Style.Marker, w.Style.EdgeColor)
	if err != nil {
		return err
	}

	x, y := w.Dimensionless()
	wave := &Wave{
		WavePoint: w,
		X:         x,
		Y:         y,
		glyph: draw.GlyphStyle{
			Color:  w.Style.Color,
			Radius: markerRadius(w.Style.Size),
			Shape:  glyph,
		},
	}
	sty := textStyle(waveLabelSize, text.XCenter, text.YTop)
	sty.Color = color.Black
	sty.Font.Weight = xfont.WeightBold
	label := &Annotation{
		Text:  w.Label,
		At:    plotter.XY{X: x, Y: y - labelDrop*y},
		Style: sty,
	}

	r.add(wave, label)
	r.waves = append(r.waves, wave)
	r.annotations = append(r.annotations, label)
	r.applyLimits()

	r.log.Debug("wave added",
		zap.String("label", w.Label),
		zap.Float64("x", x),
		zap.Float64("y", y))
	return nil
}

// Show hands the diagram to the display backend.
func (r *Renderer) Show() error {
	if r.backend == nil {
		return ErrNoBackend
	}
	r.applyLimits()
	return r.backend.Show(r)
}

// Plot returns the underlying plot.
func (r *Renderer) Plot() *plot.Plot { return r.plot }

// Curves returns the boundary curves.
func (r *Renderer) Curves() CurveSet { return r.curves }

// Limits returns the axis box and region boundaries.
func (r *Renderer) Limits() Limits { return r.limits }

// OrderLimits returns the upper limits of linear, 2nd, 3rd and 4th/5th order
// theory, i.e. the largest y of each of the first four curves.
func (r *Renderer) OrderLimits() [4]float64 { return r.orders }

// Size returns the figure size and resolution.
func (r *Renderer) Size() (width, height vg.Length, dpi int) { return r.width, r.height, r.dpi }

// Waves returns the waves in the order they were added.
func (r *Renderer) Waves() []Wave {
	out := make([]Wave, len(r.waves))
	for i, w := range r.waves {
		out[i] = *w
	}
	return out
}

// Annotations returns the wave labels currently registered.
func (r *Renderer) Annotations() []*Annotation {
	return append([]*Annotation(nil), r.annotations...)
}
