package diagram

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/plotter"
	"gopkg.in/yaml.v3"
)

// Curve indices within a CurveSet, in the order the resource stores them.
const (
	Linear = iota
	Stokes2
	Stokes3
	Stokes5 // upper limit of 4th and 5th order theory, i.e. breaking
	Cnoidal
	Solitary

	NumCurves
)

// Sample indices on the loaded curves that anchor annotations. They are tied to
// the shape of the shipped data set.
const (
	solitaryRotFrom   = 3
	solitaryRotTo     = 8
	breakingCalloutAt = 12
)

// ErrMalformedCurves is returned when a curve resource does not hold six
// curves of two-column samples.
var ErrMalformedCurves = errors.New("malformed boundary curves")

//go:embed lemehaute.yaml
var embeddedCurves []byte

// Curve is one upper validity limit in dimensionless (d/gT², H/gT²) space.
type Curve struct {
	Name   string
	Points plotter.XYs
}

// MaxY returns the largest y value of the curve.
func (c Curve) MaxY() float64 {
	_, _, _, ymax := plotter.XYRange(c.Points)
	return ymax
}

// CurveSet holds the six boundary curves of the diagram.
type CurveSet [NumCurves]Curve

type curveFile struct {
	Curves []struct {
		Name   string      `yaml:"name"`
		Points [][]float64 `yaml:"points"`
	} `yaml:"curves"`
}

// DefaultCurves decodes the curve set shipped with the package.
func DefaultCurves() (CurveSet, error) {
	return decodeCurves(embeddedCurves)
}

// LoadCurvesFile reads a curve set from a YAML file.
func LoadCurvesFile(path string) (CurveSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return CurveSet{}, fmt.Errorf("read curves: %w", err)
	}
	return decodeCurves(b)
}

// LoadCurves reads a curve set from r.
func LoadCurves(r io.Reader) (CurveSet, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return CurveSet{}, fmt.Errorf("read curves: %w", err)
	}
	return decodeCurves(b)
}

func decodeCurves(b []byte) (CurveSet, error) {
	var f curveFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return CurveSet{}, fmt.Errorf("decode curves: %w", err)
	}
	if len(f.Curves) != NumCurves {
		return CurveSet{}, fmt.Errorf("%w: want %d curves, got %d", ErrMalformedCurves, NumCurves, len(f.Curves))
	}

	var set CurveSet
	for i, c := range f.Curves {
		if len(c.Points) == 0 {
			return CurveSet{}, fmt.Errorf("%w: curve %d (%s) is empty", ErrMalformedCurves, i, c.Name)
		}
		pts := make(plotter.XYs, len(c.Points))
		for j, p := range c.Points {
			if len(p) != 2 {
				return CurveSet{}, fmt.Errorf("%w: curve %d (%s) sample %d has %d values", ErrMalformedCurves, i, c.Name, j, len(p))
			}
			pts[j].X, pts[j].Y = p[0], p[1]
		}
		set[i] = Curve{Name: c.Name, Points: pts}
	}

	if n := len(set[Solitary].Points); n <= solitaryRotTo {
		return CurveSet{}, fmt.Errorf("%w: solitary curve needs more than %d samples, got %d", ErrMalformedCurves, solitaryRotTo, n)
	}
	if n := len(set[Stokes5].Points); n <= breakingCalloutAt {
		return CurveSet{}, fmt.Errorf("%w: breaking curve needs more than %d samples, got %d", ErrMalformedCurves, breakingCalloutAt, n)
	}
	return set, nil
}
