package buoy

import (
	"fmt"
	"math"
	"time"

	"github.com/zweihuehner/le-mehaute-diagram/diagram"
)

// WaveSummary is one row of the NOAA detailed wave summary (.spec) file.
// Missing numeric values are NaN; a missing mean direction is -1.
// Field descriptions (see https://www.ndbc.noaa.gov/faq/measdes.shtml):
//
//	WVHT: Significant Wave Height (m)
//	SwH / SwP / SwD: Primary Swell Height (m), Period (s), Direction (text)
//	WWH / WWP / WWD: Wind Wave Height (m), Period (s), Direction (text)
//	STEEPNESS: Wave steepness category
//	APD: Average Wave Period (s)
//	MWD: Mean Wave Direction (deg true)
type WaveSummary struct {
	Station           string    `json:"station"`
	Time              time.Time `json:"time"`
	WVHT              float64   `json:"wvht"`
	SwellHeight       float64   `json:"swell_height"`
	SwellPeriod       float64   `json:"swell_period"`
	WindWaveHeight    float64   `json:"wind_wave_height"`
	WindWavePeriod    float64   `json:"wind_wave_period"`
	SwellDirection    string    `json:"swell_direction"`
	WindWaveDirection string    `json:"wind_wave_direction"`
	Steepness         string    `json:"steepness"`
	AveragePeriod     float64   `json:"average_period"`
	MeanWaveDirection int       `json:"mean_wave_direction"`
}

func (w WaveSummary) String() string {
	return fmt.Sprintf("%.1fm sig (swell %.1fm @ %.0fs %s / wind %.1fm @ %.0fs %s) | steep %s | avg %.1fs | mean %d°",
		w.WVHT, w.SwellHeight, w.SwellPeriod, w.SwellDirection, w.WindWaveHeight, w.WindWavePeriod, w.WindWaveDirection, w.Steepness, w.AveragePeriod, w.MeanWaveDirection)
}

// Period is the swell period, or the average period when the swell period is
// missing. It is NaN when neither is usable.
func (w WaveSummary) Period() float64 {
	if usable(w.SwellPeriod) {
		return w.SwellPeriod
	}
	if usable(w.AveragePeriod) {
		return w.AveragePeriod
	}
	return math.NaN()
}

// WavePoint places the observation on the diagram for a site of the given
// water depth in meters.
func (w WaveSummary) WavePoint(depth float64) (diagram.WavePoint, error) {
	T := w.Period()
	if !usable(w.WVHT) || !usable(T) {
		return diagram.WavePoint{}, ErrIncomplete
	}
	if !usable(depth) {
		return diagram.WavePoint{}, fmt.Errorf("depth must be positive, got %v", depth)
	}
	return diagram.WavePoint{
		Depth:  depth,
		Period: T,
		Height: w.WVHT,
		Label:  fmt.Sprintf("buoy %s %s", w.Station, w.Time.Format("2006-01-02 15:04")),
		Style:  diagram.Style{Marker: "o"},
	}, nil
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Data holds the state of the buoy fetch shown in the terminal view.
type Data struct {
	Station string
	Depth   float64
	wave    *WaveSummary
	waveErr error
	loading bool
}

// NewData prepares a fetch for station at a site of the given depth.
func NewData(station string, depth float64) *Data {
	return &Data{Station: station, Depth: depth}
}

// Wave returns the last fetched observation, if any.
func (b *Data) Wave() (WaveSummary, bool) {
	if b == nil || b.wave == nil {
		return WaveSummary{}, false
	}
	return *b.wave, true
}

// Err returns the error of the last fetch.
func (b *Data) Err() error {
	if b == nil {
		return nil
	}
	return b.waveErr
}

// setWave populates wave summary fields after fetching.
func (b *Data) setWave(ws WaveSummary, err error) {
	b.loading = false
	b.waveErr = err
	if err == nil {
		b.wave = &ws
	}
}
