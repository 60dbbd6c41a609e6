package samples

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/zweihuehner/le-mehaute-diagram/diagram"
)

// Sample is a stored wave measurement.
// ID is assigned by the service when creating a new sample.
type Sample struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Depth     float64 `json:"depth"`
	Period    float64 `json:"period"`
	Height    float64 `json:"height"`
	Color     string  `json:"color,omitempty"`
	Marker    string  `json:"marker,omitempty"`
	EdgeColor string  `json:"edge_color,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Source    string  `json:"source,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid sample")

// Validate checks that the sample can be plotted.
func (s Sample) Validate() error {
	if strings.TrimSpace(s.Label) == "" {
		return fmt.Errorf("%w: label required", ErrInvalid)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"depth", s.Depth}, {"period", s.Period}, {"height", s.Height}} {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, f.name, f.v)
		}
	}
	if s.Size < 0 {
		return fmt.Errorf("%w: size must not be negative", ErrInvalid)
	}
	if s.Marker != "" && !slices.Contains(diagram.Markers, s.Marker) {
		return fmt.Errorf("%w: marker %q", ErrInvalid, s.Marker)
	}
	for _, c := range []string{s.Color, s.EdgeColor} {
		if c == "" {
			continue
		}
		if _, err := diagram.ParseColor(c); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// WavePoint converts the sample for plotting. Empty style fields take the
// diagram defaults.
func (s Sample) WavePoint() (diagram.WavePoint, error) {
	if err := s.Validate(); err != nil {
		return diagram.WavePoint{}, err
	}
	wp := diagram.WavePoint{
		Depth:  s.Depth,
		Period: s.Period,
		Height: s.Height,
		Label:  s.Label,
		Style:  diagram.Style{Marker: s.Marker, Size: s.Size},
	}
	if s.Color != "" {
		wp.Style.Color, _ = diagram.ParseColor(s.Color)
	}
	if s.EdgeColor != "" {
		wp.Style.EdgeColor, _ = diagram.ParseColor(s.EdgeColor)
	}
	return wp, nil
}

// Dimensionless returns the diagram coordinates of the sample.
func (s Sample) Dimensionless() (x, y float64) {
	return diagram.Point(s.Depth, s.Period, s.Height)
}
