package diagram

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// decadeTicks marks every power of ten in range with a plain %g label and
// no minor ticks. Labels for values in hide are left blank.
type decadeTicks struct {
	hide []float64
}

// Ticks implements plot.Ticker.
func (t decadeTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 || max <= 0 || min > max {
		return nil
	}
	lo := math.Ceil(math.Log10(min) - 1e-9)
	hi := math.Floor(math.Log10(max) + 1e-9)

	var ticks []plot.Tick
	for e := lo; e <= hi; e++ {
		v := decade(int(e))
		label := strconv.FormatFloat(v, 'g', -1, 64)
		if t.hidden(v) {
			label = ""
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}

// decade returns 10^e correctly rounded, so that labels print as "1e-05"
// rather than carrying a rounding tail.
func decade(e int) float64 {
	v, _ := strconv.ParseFloat("1e"+strconv.Itoa(e), 64)
	return v
}

func (t decadeTicks) hidden(v float64) bool {
	for _, h := range t.hide {
		if math.Abs(v-h) <= 1e-9*math.Abs(h) {
			return true
		}
	}
	return false
}
