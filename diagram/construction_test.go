package diagram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestRegionLabelsAndSpans(t *testing.T) {
	r := newRenderer(t)
	lim := r.limits
	require.Len(t, r.base, 14)

	y := lim.Bottom * 1.75
	spans := [3][2]float64{
		{lim.Left, lim.ShallowIntermediate},
		{lim.ShallowIntermediate, lim.IntermediateDeep},
		{lim.IntermediateDeep, lim.Right},
	}
	names := []string{"SHALLOW\nWATER WAVES", "INTERMEDIATE WATER\nWAVES", "DEEP WATER\nWAVES"}
	for i, span := range spans {
		label, arrow := r.base[2*i], r.base[2*i+1]
		assert.Equal(t, names[i], label.Text)
		assert.InDelta(t, logMid(span[0], span[1]), label.At.X, 1e-15)
		assert.Equal(t, y, label.At.Y)
		assert.Equal(t, text.XCenter, label.Style.XAlign)
		assert.Equal(t, text.YBottom, label.Style.YAlign)

		require.NotNil(t, arrow.Arrow)
		assert.Empty(t, arrow.Text)
		assert.Equal(t, HeadBoth, arrow.Arrow.Heads)
		assert.Equal(t, plotter.XY{X: span[0], Y: y - y/15}, arrow.Arrow.From)
		assert.Equal(t, plotter.XY{X: span[1], Y: y - y/15}, arrow.Arrow.To)
	}
}

func TestOrderLabelPositions(t *testing.T) {
	r := newRenderer(t)
	lim := r.limits

	linear := r.base[6]
	assert.Equal(t, "LINEAR WAVE THEORY\n(AIRY)", linear.Text)
	assert.Equal(t, lim.IntermediateDeep, linear.At.X)
	assert.InDelta(t, logMid(lim.Bottom, r.orders[0]), linear.At.Y, 1e-15)

	for i, want := range []string{"STOKES 2nd ORDER", "STOKES 3rd ORDER", "STOKES 4th or 5th ORDER"} {
		a := r.base[7+i]
		assert.Equal(t, want, a.Text)
		assert.Equal(t, lim.Right*0.9, a.At.X)
		assert.InDelta(t, logMid(r.orders[i], r.orders[i+1]), a.At.Y, 1e-15)
		assert.Equal(t, text.XRight, a.Style.XAlign)
	}
}

func TestCalloutGeometry(t *testing.T) {
	r := newRenderer(t)
	lim := r.limits
	sol := r.curves[Solitary].Points

	solitary := r.base[10]
	assert.Equal(t, "SOLITARY WAVE THEORY", solitary.Text)
	assert.Equal(t, plotter.XY{X: sol[8].X, Y: sol[8].Y * 1.065}, solitary.At)
	require.NotNil(t, solitary.Along)
	assert.Equal(t, plotter.XY{X: sol[3].X, Y: sol[3].Y * 1.065}, solitary.Along[0])
	assert.Equal(t, solitary.At, solitary.Along[1])

	cnoidal := r.base[11]
	assert.Equal(t, "CNOIDAL\nWAVES", cnoidal.Text)
	assert.InDelta(t, logMid(lim.Left, lim.ShallowIntermediate)*2.1, cnoidal.At.X, 1e-15)
	assert.Equal(t, lim.Bottom*20, cnoidal.At.Y)

	shallow := r.base[12]
	assert.Contains(t, shallow.Text, "H/d = 0.78")
	require.NotNil(t, shallow.Arrow)
	assert.Equal(t, shallow.At, shallow.Arrow.From)
	assert.Equal(t, r.curves[Stokes5].Points[12], shallow.Arrow.To)
	assert.Equal(t, HeadEnd, shallow.Arrow.Heads)

	deep := r.base[13]
	assert.Contains(t, deep.Text, "H/λ = 0.142")
	require.NotNil(t, deep.Arrow)
	assert.Equal(t, plotter.XY{X: logMid(lim.ShallowIntermediate, lim.IntermediateDeep), Y: 0.035}, deep.Arrow.From)
	assert.Equal(t, plotter.XY{X: logMid(lim.IntermediateDeep, lim.Right), Y: 0.035}, deep.Arrow.To)
}

func TestOnlySecondAndThirdOrderCurvesDashed(t *testing.T) {
	r := newRenderer(t)
	require.Len(t, r.curveLines, len(r.curves))
	for i, l := range r.curveLines {
		if i == Stokes2 || i == Stokes3 {
			assert.NotEmpty(t, l.LineStyle.Dashes, "curve %d", i)
			continue
		}
		assert.Empty(t, l.LineStyle.Dashes, "curve %d", i)
	}
}

func TestSlopeAngle(t *testing.T) {
	unit := func(v float64) vg.Length { return vg.Length(v) }
	double := func(v float64) vg.Length { return vg.Length(2 * v) }

	assert.InDelta(t, math.Pi/4, slopeAngle(plotter.XY{X: 0, Y: 0}, plotter.XY{X: 1, Y: 1}, unit, unit), 1e-12)
	assert.InDelta(t, math.Atan2(2, 1), slopeAngle(plotter.XY{X: 0, Y: 0}, plotter.XY{X: 1, Y: 1}, unit, double), 1e-12)
	assert.InDelta(t, -math.Pi/4, slopeAngle(plotter.XY{X: 0, Y: 1}, plotter.XY{X: 1, Y: 0}, unit, unit), 1e-12)
	assert.Zero(t, slopeAngle(plotter.XY{X: math.NaN(), Y: 0}, plotter.XY{X: 1, Y: 1}, unit, unit))
}

func TestClipTail(t *testing.T) {
	box := vg.Rectangle{Min: vg.Point{X: -10, Y: -5}, Max: vg.Point{X: 10, Y: 5}}

	got := clipTail(vg.Point{}, vg.Point{X: 100}, box)
	assert.InDelta(t, 10, float64(got.X), 1e-9)
	assert.InDelta(t, 0, float64(got.Y), 1e-9)

	got = clipTail(vg.Point{}, vg.Point{X: 20, Y: -20}, box)
	assert.InDelta(t, 5, float64(got.X), 1e-9)
	assert.InDelta(t, -5, float64(got.Y), 1e-9)

	outside := vg.Point{X: 20, Y: 20}
	assert.Equal(t, outside, clipTail(outside, vg.Point{X: 40}, box))
}

func TestCalloutArrowsStartOutsideLabels(t *testing.T) {
	r := newRenderer(t)
	dc := draw.New(vgimg.New(r.width, r.height))
	da := r.plot.DataCanvas(dc)
	trX, trY := r.plot.Transforms(&da)

	for _, a := range r.base[12:] {
		require.NotNil(t, a.Arrow)
		from, to, ok := a.arrowEnds(trX, trY)
		require.True(t, ok, a.Text)

		box := labelBox(a.Style, vg.Point{X: trX(a.At.X), Y: trY(a.At.Y)}, a.Text)
		assert.Greater(t, box.Max.X-box.Min.X, labelPad*2, a.Text)
		assert.False(t, inBox(shrink(box, 0.01), from), a.Text)
		assert.NotEqual(t, vg.Point{X: trX(a.At.X), Y: trY(a.At.Y)}, from, a.Text)
		assert.Equal(t, vg.Point{X: trX(a.Arrow.To.X), Y: trY(a.Arrow.To.Y)}, to, a.Text)
	}
}

func shrink(r vg.Rectangle, d vg.Length) vg.Rectangle {
	return vg.Rectangle{
		Min: vg.Point{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: vg.Point{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}

func TestAxesAndLegendUseSans(t *testing.T) {
	r := newRenderer(t)
	require.NoError(t, r.AddWave(WavePoint{Depth: 10, Period: 8, Height: 1, Label: "w"}))
	require.NoError(t, r.Legend(LocBest))

	p := r.Plot()
	assert.Equal(t, "Sans", string(p.X.Tick.Label.Font.Variant))
	assert.Equal(t, "Sans", string(p.Y.Tick.Label.Font.Variant))
	assert.Equal(t, "Sans", string(p.X.Label.TextStyle.Font.Variant))
	assert.Equal(t, "Sans", string(p.Y.Label.TextStyle.Font.Variant))
	assert.Equal(t, "Sans", string(p.Legend.TextStyle.Font.Variant))
	assert.Equal(t, axisLabelSize, p.X.Label.TextStyle.Font.Size)
}
