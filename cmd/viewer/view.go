// Package viewer draws the diagram in a terminal with braille lines on a
// log10 grid.
package viewer

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/zweihuehner/le-mehaute-diagram/diagram"
)

var (
	curveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	orderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	regionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// markerRunes maps plot marker codes to the closest terminal glyph.
var markerRunes = map[string]rune{
	"o": '●', "v": '▼', "^": '▲', "<": '◀', ">": '▶',
	"s": '■', "d": '◆', "D": '◆', "p": '⬟', "h": '⬢', "*": '★',
}

// MarkerRune returns the glyph drawn for a marker code.
func MarkerRune(marker string) rune {
	if r, ok := markerRunes[marker]; ok {
		return r
	}
	return '•'
}

// Hex formats c for lipgloss.
func Hex(c color.Color) lipgloss.Color {
	if c == nil {
		return lipgloss.Color("")
	}
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// Minimum chart size in cells.
const (
	MinWidth  = 30
	MinHeight = 10
)

// View renders r into a width x height block of terminal cells, plus a
// legend block below the chart when r has a legend.
func View(r *diagram.Renderer, width, height int) string {
	if r == nil {
		return faintStyle.Render("no diagram")
	}
	width = max(MinWidth, width)
	height = max(MinHeight, height)

	lim := r.Limits()
	minX, maxX := math.Log10(lim.Left), math.Log10(lim.Right)
	minY, maxY := math.Log10(lim.Bottom), math.Log10(lim.Top)

	legend := ""
	if r.HasLegend() {
		legend = legendBlock(r)
		height = max(MinHeight, height-lipgloss.Height(legend))
	}

	lc := linechart.New(width, height, minX, maxX, minY, maxY, linechart.WithXYSteps(4, 2))
	lc.XLabelFormatter = decadeLabel
	lc.YLabelFormatter = decadeLabel
	lc.DrawXYAxisAndLabel()

	g := grid{lc: &lc, minX: minX, maxX: maxX, minY: minY, maxY: maxY}

	for _, x := range []float64{lim.ShallowIntermediate, lim.IntermediateDeep} {
		g.line(x, lim.Bottom, x, lim.Top, regionStyle)
	}
	for i, c := range r.Curves() {
		sty := curveStyle
		if i == diagram.Stokes2 || i == diagram.Stokes3 {
			sty = orderStyle
		}
		for j := 1; j < len(c.Points); j++ {
			p, q := c.Points[j-1], c.Points[j]
			g.line(p.X, p.Y, q.X, q.Y, sty)
		}
	}

	top := lim.Top / 2
	g.text(math.Sqrt(lim.Left*lim.ShallowIntermediate), top, "Shallow", textStyle)
	g.text(math.Sqrt(lim.ShallowIntermediate*lim.IntermediateDeep), top, "Intermediate", textStyle)
	g.text(math.Sqrt(lim.IntermediateDeep*lim.Right), top, "Deep", textStyle)

	for _, w := range r.Waves() {
		if !g.inside(w.X, w.Y) {
			continue
		}
		sty := lipgloss.NewStyle().Foreground(Hex(w.Style.Color))
		lc.DrawRuneWithStyle(canvas.Float64Point{X: math.Log10(w.X), Y: math.Log10(w.Y)}, MarkerRune(w.Style.Marker), sty)
	}
	for _, a := range r.Annotations() {
		if a.Removed() {
			continue
		}
		g.text(a.At.X, a.At.Y, a.Text, labelStyle)
	}

	out := lc.View()
	if legend != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, legend)
	}
	return out
}

func decadeLabel(_ int, v float64) string {
	return fmt.Sprintf("%.0e", math.Pow(10, v))
}

// legendBlock lists every labelled wave with its marker.
func legendBlock(r *diagram.Renderer) string {
	var rows []string
	for _, w := range r.Waves() {
		if w.Label == "" {
			continue
		}
		glyph := lipgloss.NewStyle().Foreground(Hex(w.Style.Color)).Render(string(MarkerRune(w.Style.Marker)))
		rows = append(rows, glyph+" "+w.Label)
	}
	if len(rows) == 0 {
		return ""
	}
	return titleStyle.Render("Legend") + "\n" + strings.Join(rows, "\n")
}

// grid maps diagram coordinates onto the chart's log10 view.
type grid struct {
	lc                     *linechart.Model
	minX, maxX, minY, maxY float64
}

func (g grid) inside(x, y float64) bool {
	if !(x > 0) || !(y > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	lx, ly := math.Log10(x), math.Log10(y)
	return lx >= g.minX && lx <= g.maxX && ly >= g.minY && ly <= g.maxY
}

// line draws a braille segment when both ends lie inside the view.
func (g grid) line(x1, y1, x2, y2 float64, sty lipgloss.Style) {
	if !g.inside(x1, y1) || !g.inside(x2, y2) {
		return
	}
	g.lc.DrawBrailleLineWithStyle(
		canvas.Float64Point{X: math.Log10(x1), Y: math.Log10(y1)},
		canvas.Float64Point{X: math.Log10(x2), Y: math.Log10(y2)},
		sty)
}

// text writes s centred on (x, y), clipped to the graph area.
func (g grid) text(x, y float64, s string, sty lipgloss.Style) {
	if !g.inside(x, y) {
		return
	}
	origin := g.lc.Origin()
	gw, gh := g.lc.GraphWidth(), g.lc.GraphHeight()
	if gw < 1 || gh < 1 {
		return
	}
	xRel := (math.Log10(x) - g.minX) / (g.maxX - g.minX)
	yRel := (math.Log10(y) - g.minY) / (g.maxY - g.minY)
	col := origin.X + 1 + int(math.Round(xRel*float64(gw-1)))
	row := origin.Y - 1 - int(math.Round(yRel*float64(gh-1)))

	runes := []rune(s)
	col -= len(runes) / 2
	for i, ch := range runes {
		c := col + i
		if c <= origin.X || c >= g.lc.Canvas.Width() || row < 0 || row >= origin.Y {
			continue
		}
		g.lc.Canvas.SetCell(canvas.Point{X: c, Y: row}, canvas.NewCellWithStyle(ch, sty))
	}
}
