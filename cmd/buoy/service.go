package buoy

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL serves the NDBC realtime files as <station>.spec.
const DefaultBaseURL = "https://www.ndbc.noaa.gov/data/realtime2/"

// missing marks an absent value in NDBC files.
const missing = "MM"

var (
	// ErrNoData is returned when the .spec file holds no observation rows.
	ErrNoData = errors.New("no data lines in spec file")
	// ErrIncomplete is returned when an observation lacks a height or period.
	ErrIncomplete = errors.New("observation has no usable height or period")
)

// Service reads buoy observations.
type Service interface {
	// LatestWave retrieves the detailed wave summary (.spec) file for station
	// and returns its most recent observation (the first non-comment line).
	LatestWave(ctx context.Context, station string) (WaveSummary, error)
}

var _ Service = (*dataService)(nil)

type dataService struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// Option configures the service.
type Option func(*dataService)

// WithBaseURL replaces DefaultBaseURL. An empty url is ignored.
func WithBaseURL(url string) Option {
	return func(s *dataService) {
		if url != "" {
			s.baseURL = url
		}
	}
}

// WithHTTPClient replaces the default client, which times out after 10s.
func WithHTTPClient(c *http.Client) Option {
	return func(s *dataService) { s.client = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *dataService) { s.log = l }
}

func NewService(opts ...Option) Service {
	s := &dataService{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	if !strings.HasSuffix(s.baseURL, "/") {
		s.baseURL += "/"
	}
	return s
}

func (s *dataService) LatestWave(ctx context.Context, station string) (WaveSummary, error) {
	station = strings.TrimSpace(station)
	if station == "" {
		return WaveSummary{}, errors.New("empty station id")
	}
	url := s.baseURL + station + ".spec"
	s.log.Debug("fetching buoy observation", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return WaveSummary{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return WaveSummary{}, fmt.Errorf("station %s: %w", station, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return WaveSummary{}, fmt.Errorf("station %s: unexpected status code: %s", station, resp.Status)
	}

	ws, err := parseLatest(resp.Body)
	if err != nil {
		return WaveSummary{}, fmt.Errorf("station %s: %w", station, err)
	}
	ws.Station = station
	s.log.Info("buoy observation",
		zap.String("station", station),
		zap.Time("time", ws.Time),
		zap.Float64("wvht", ws.WVHT),
		zap.Float64("period", ws.Period()))
	return ws, nil
}

// parseLatest reads the first observation row of a .spec file. Columns:
//
//	YY MM DD hh mm WVHT SwH SwP WWH WWP SwD WWD STEEPNESS APD MWD
func parseLatest(r io.Reader) (WaveSummary, error) {
	sc := bufio.NewScanner(r)
	var fields []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields = strings.Fields(line)
		break
	}
	if err := sc.Err(); err != nil {
		return WaveSummary{}, err
	}
	if fields == nil {
		return WaveSummary{}, ErrNoData
	}
	if len(fields) < 15 {
		return WaveSummary{}, fmt.Errorf("unexpected column count in spec line: %q", strings.Join(fields, " "))
	}

	var stamp [5]int
	for i := range stamp {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return WaveSummary{}, fmt.Errorf("timestamp column %d: %w", i, err)
		}
		stamp[i] = v
	}

	var nums [6]float64
	for i, col := range []int{5, 6, 7, 8, 9, 13} {
		v, err := parseFloat(fields[col])
		if err != nil {
			return WaveSummary{}, fmt.Errorf("column %d: %w", col, err)
		}
		nums[i] = v
	}

	mwd := -1
	if fields[14] != missing {
		v, err := strconv.Atoi(fields[14])
		if err != nil {
			return WaveSummary{}, fmt.Errorf("column 14: %w", err)
		}
		mwd = v
	}

	return WaveSummary{
		Time:              time.Date(stamp[0], time.Month(stamp[1]), stamp[2], stamp[3], stamp[4], 0, 0, time.UTC),
		WVHT:              nums[0],
		SwellHeight:       nums[1],
		SwellPeriod:       nums[2],
		WindWaveHeight:    nums[3],
		WindWavePeriod:    nums[4],
		SwellDirection:    fields[10],
		WindWaveDirection: fields[11],
		Steepness:         fields[12],
		AveragePeriod:     nums[5],
		MeanWaveDirection: mwd,
	}, nil
}

func parseFloat(s string) (float64, error) {
	if s == missing {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
