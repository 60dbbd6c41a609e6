package diagram

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Figure size of the bundled example.
var (
	ExampleWidth  = 12 * 0.9 * vg.Inch
	ExampleHeight = 10 * 0.9 * vg.Inch
)

// ExampleWaves returns four waves around d = 1.682 m, T = 1.42 s, H = 0.11 m.
func ExampleWaves() []WavePoint {
	const (
		d = 1.682
		T = 1.42
		H = 0.11
	)
	return []WavePoint{
		{Depth: d, Period: T, Height: H, Label: "example wave 1",
			Style: Style{Color: namedColors["green"], Marker: "*", EdgeColor: color.Black, Size: 60}},
		{Depth: d + 5, Period: T, Height: H + 0.02, Label: "example wave 2",
			Style: Style{Color: namedColors["orange"], Marker: "d", EdgeColor: color.Black, Size: 50}},
		{Depth: d, Period: T + 1, Height: H, Label: "example wave 3",
			Style: Style{Color: namedColors["purple"], Marker: "^", EdgeColor: color.Black, Size: 50}},
		{Depth: d, Period: T, Height: H - 0.05, Label: "example wave 4",
			Style: Style{Color: rgbf(1, 0, 0), Marker: "s", EdgeColor: color.Black, Size: 40}},
	}
}

// NewExample builds the example diagram: four waves and a legend in the upper
// left corner.
func NewExample(opts ...Option) (*Renderer, error) {
	opts = append([]Option{WithSize(ExampleWidth, ExampleHeight), WithDPI(100)}, opts...)
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	for _, w := range ExampleWaves() {
		if err := r.AddWave(w); err != nil {
			return nil, err
		}
	}
	if err := r.Legend("upper left"); err != nil {
		return nil, err
	}
	return r, nil
}
