package diagram

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// ErrUnknownLocation is returned by Legend for an unsupported location.
var ErrUnknownLocation = errors.New("unknown legend location")

// LocBest picks the emptiest corner.
const LocBest = "best"

type corner struct{ top, left bool }

// corners in the order "best" prefers them on a tie.
var corners = []struct {
	name string
	corner
}{
	{"upper right", corner{top: true}},
	{"upper left", corner{top: true, left: true}},
	{"lower left", corner{left: true}},
	{"lower right", corner{}},
}

var legendInset = vg.Points(8)

// Locations lists the accepted legend locations.
func Locations() []string {
	locs := []string{LocBest}
	for _, c := range corners {
		locs = append(locs, c.name)
	}
	return locs
}

func parseLocation(loc string) (c corner, best bool, err error) {
	loc = strings.ToLower(strings.TrimSpace(loc))
	if loc == "" || loc == LocBest {
		return corner{}, true, nil
	}
	for _, k := range corners {
		if k.name == loc {
			return k.corner, false, nil
		}
	}
	return corner{}, false, fmt.Errorf("%w: %q", ErrUnknownLocation, loc)
}

// Legend removes every registered wave label so it does not collide with the
// legend, empties the registry and lists the waves at loc. An empty loc means
// "best". Calling it again rebuilds the same legend and has no labels left to
// remove.
func (r *Renderer) Legend(loc string) error {
	c, best, err := parseLocation(loc)
	if err != nil {
		return err
	}
	removed := len(r.annotations)
	for _, a := range r.annotations {
		a.Remove()
	}
	r.annotations = nil

	if best {
		c = r.bestCorner()
	}
	lg := r.baseLegend
	lg.Top, lg.Left = c.top, c.left
	lg.XOffs, lg.YOffs = legendInset, -legendInset
	if !c.left {
		lg.XOffs = -legendInset
	}
	if !c.top {
		lg.YOffs = legendInset
	}
	r.legendLabels = r.legendLabels[:0]
	for _, w := range r.waves {
		if w.Label == "" {
			continue
		}
		lg.Add(w.Label, w)
		r.legendLabels = append(r.legendLabels, w.Label)
	}
	r.plot.Legend = lg
	r.legendOn = true

	r.log.Debug("legend drawn",
		zap.Bool("top", c.top),
		zap.Bool("left", c.left),
		zap.Int("entries", len(r.legendLabels)),
		zap.Int("labels_removed", removed))
	return nil
}

// LegendEntries lists the labels the last Legend call put in the legend.
func (r *Renderer) LegendEntries() []string { return slices.Clone(r.legendLabels) }

// HasLegend reports whether Legend has been called.
func (r *Renderer) HasLegend() bool { return r.legendOn }

// bestCorner returns the corner whose quarter of the axes, in log space, holds
// the fewest curve samples and waves.
func (r *Renderer) bestCorner() corner {
	lim := r.limits
	norm := func(v, lo, hi float64) float64 {
		return (math.Log10(v) - math.Log10(lo)) / (math.Log10(hi) - math.Log10(lo))
	}
	var counts [4]int
	count := func(x, y float64) {
		if !drawable(x, y) {
			return
		}
		nx, ny := norm(x, lim.Left, lim.Right), norm(y, lim.Bottom, lim.Top)
		if nx < 0 || nx > 1 || ny < 0 || ny > 1 {
			return
		}
		for i, k := range corners {
			inX := (k.left && nx <= 0.5) || (!k.left && nx >= 0.5)
			inY := (k.top && ny >= 0.5) || (!k.top && ny <= 0.5)
			if inX && inY {
				counts[i]++
			}
		}
	}
	for _, c := range r.curves {
		for _, p := range c.Points {
			count(p.X, p.Y)
		}
	}
	for _, w := range r.waves {
		count(w.X, w.Y)
	}

	best := 0
	for i := range counts {
		if counts[i] < counts[best] {
			best = i
		}
	}
	return corners[best].corner
}
