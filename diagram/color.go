package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned by ParseColor for unrecognized input.
var ErrUnknownColor = errors.New("unknown color")

var namedColors = map[string]color.RGBA{
	"black":   {A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"red":     {R: 255, A: 255},
	"green":   {G: 128, A: 255},
	"lime":    {G: 255, A: 255},
	"blue":    {B: 255, A: 255},
	"orange":  {R: 255, G: 165, A: 255},
	"purple":  {R: 128, B: 128, A: 255},
	"yellow":  {R: 255, G: 255, A: 255},
	"cyan":    {G: 255, B: 255, A: 255},
	"magenta": {R: 255, B: 255, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"grey":    {R: 128, G: 128, B: 128, A: 255},
	"brown":   {R: 165, G: 42, B: 42, A: 255},
	"pink":    {R: 255, G: 192, B: 203, A: 255},
	"olive":   {R: 128, G: 128, A: 255},
	"navy":    {B: 128, A: 255},
	"teal":    {G: 128, B: 128, A: 255},
}

// ParseColor accepts a color name, a hex value (#rgb or #rrggbb) or a
// comma-separated RGB triple of fractions such as "1.0,0.0,0.0".
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHex(v[1:], s)
	}
	if parts := strings.Split(v, ","); len(parts) == 3 {
		var rgb [3]float64
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil || f < 0 || f > 1 {
				return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
			}
			rgb[i] = f
		}
		return rgbf(rgb[0], rgb[1], rgb[2]), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func parseHex(h, orig string) (color.Color, error) {
	if len(h) != 3 && len(h) != 6 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// rgbf builds an opaque color from fractional channels.
func rgbf(r, g, b float64) color.RGBA {
	return color.RGBA{R: uint8(r*255 + 0.5), G: uint8(g*255 + 0.5), B: uint8(b*255 + 0.5), A: 255}
}
