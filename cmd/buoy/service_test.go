package buoy

import (
	"context"
	"math"
	"net/http"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specFile = `#YY  MM DD hh mm WVHT  SwH  SwP  WWH  WWP SwD WWD  STEEPNESS  APD MWD
#yr  mo dy hr mn    m    m  sec    m  sec  -  degT     -      sec degT
2025 08 14 17 40  1.2  1.1 12.5  0.4  4.0 WNW  W      AVERAGE  8.3 289
2025 08 14 17 10  1.3  1.1 12.5  0.5  4.2 WNW  W      AVERAGE  8.1 287
`

const baseURL = "https://buoys.test/realtime2/"

func newMockedService(t *testing.T, status int, body string) Service {
	t.Helper()
	mt := httpmock.NewMockTransport()
	mt.RegisterResponder("GET", baseURL+"46274.spec", httpmock.NewStringResponder(status, body))
	return NewService(WithBaseURL(baseURL), WithHTTPClient(&http.Client{Transport: mt}))
}

func TestLatestWave(t *testing.T) {
	svc := newMockedService(t, http.StatusOK, specFile)

	ws, err := svc.LatestWave(context.Background(), "46274")
	require.NoError(t, err)
	assert.Equal(t, "46274", ws.Station)
	assert.Equal(t, time.Date(2025, 8, 14, 17, 40, 0, 0, time.UTC), ws.Time)
	assert.Equal(t, 1.2, ws.WVHT)
	assert.Equal(t, 12.5, ws.SwellPeriod)
	assert.Equal(t, "WNW", ws.SwellDirection)
	assert.Equal(t, "AVERAGE", ws.Steepness)
	assert.Equal(t, 8.3, ws.AveragePeriod)
	assert.Equal(t, 289, ws.MeanWaveDirection)

	wp, err := ws.WavePoint(20)
	require.NoError(t, err)
	assert.Equal(t, 20.0, wp.Depth)
	assert.Equal(t, 12.5, wp.Period)
	assert.Equal(t, 1.2, wp.Height)
	assert.Equal(t, "buoy 46274 2025-08-14 17:40", wp.Label)
}

func TestLatestWaveMissingSwellPeriodFallsBackToAverage(t *testing.T) {
	body := "#header\n2025 08 14 17 40  1.2  MM MM  MM  MM MM  MM  MM  8.3 MM\n"
	svc := newMockedService(t, http.StatusOK, body)

	ws, err := svc.LatestWave(context.Background(), "46274")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(ws.SwellPeriod))
	assert.Equal(t, -1, ws.MeanWaveDirection)
	assert.Equal(t, 8.3, ws.Period())

	wp, err := ws.WavePoint(10)
	require.NoError(t, err)
	assert.Equal(t, 8.3, wp.Period)
}

func TestWavePointIncomplete(t *testing.T) {
	ws := WaveSummary{WVHT: math.NaN(), SwellPeriod: 10, AveragePeriod: 8}
	_, err := ws.WavePoint(10)
	require.ErrorIs(t, err, ErrIncomplete)

	ws = WaveSummary{WVHT: 1, SwellPeriod: math.NaN(), AveragePeriod: math.NaN()}
	_, err = ws.WavePoint(10)
	require.ErrorIs(t, err, ErrIncomplete)

	ws = WaveSummary{WVHT: 1, SwellPeriod: 10}
	_, err = ws.WavePoint(0)
	require.Error(t, err)
}

func TestLatestWaveErrors(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
		target error
	}{
		"bad status":    {http.StatusNotFound, "not found", nil},
		"only comments": {http.StatusOK, "#YY MM\n#yr mo\n", ErrNoData},
		"short row":     {http.StatusOK, "2025 08 14 17 40 1.2\n", nil},
		"bad number":    {http.StatusOK, strings.Replace(specFile, " 1.2 ", " x.y ", 1), nil},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			svc := newMockedService(t, c.status, c.body)
			_, err := svc.LatestWave(context.Background(), "46274")
			require.Error(t, err)
			if c.target != nil {
				assert.ErrorIs(t, err, c.target)
			}
		})
	}

	_, err := NewService().LatestWave(context.Background(), " ")
	require.Error(t, err)
}

func TestHandleUpdate(t *testing.T) {
	svc := newMockedService(t, http.StatusOK, specFile)
	data := NewData("46274", 20)
	assert.Contains(t, View(data), "press b")

	data, cmd := HandleUpdate(context.Background(), data, svc, RefreshMsg{})
	require.NotNil(t, cmd)
	assert.Contains(t, View(data), "fetching")

	// a second refresh while loading is dropped
	_, again := HandleUpdate(context.Background(), data, svc, RefreshMsg{})
	assert.Nil(t, again)

	msg := cmd()
	fetched, ok := msg.(FetchedMsg)
	require.True(t, ok)
	require.NoError(t, fetched.Err)

	data, cmd = HandleUpdate(context.Background(), data, svc, msg)
	assert.Nil(t, cmd)
	ws, ok := data.Wave()
	require.True(t, ok)
	assert.Equal(t, 1.2, ws.WVHT)
	assert.Contains(t, View(data), "1.2m sig")

	_, cmd = HandleUpdate(context.Background(), data, svc, tea.WindowSizeMsg{})
	assert.Nil(t, cmd)
}

func TestViewWithoutStation(t *testing.T) {
	assert.Contains(t, View(nil), "No buoy configured")
	assert.Contains(t, View(NewData("", 0)), "No buoy configured")
}

// ctxService answers with the state of the request context.
type ctxService struct{}

func (ctxService) LatestWave(ctx context.Context, station string) (WaveSummary, error) {
	return WaveSummary{Station: station}, ctx.Err()
}

func TestFetchFollowsParentContext(t *testing.T) {
	msg := FetchCmd(context.Background(), ctxService{}, "46274")()
	fetched, ok := msg.(FetchedMsg)
	require.True(t, ok)
	require.NoError(t, fetched.Err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	data, cmd := HandleUpdate(ctx, NewData("46274", 20), ctxService{}, RefreshMsg{})
	require.NotNil(t, cmd)
	fetched, ok = cmd().(FetchedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, fetched.Err, context.Canceled)

	data, _ = HandleUpdate(ctx, data, ctxService{}, fetched)
	assert.ErrorIs(t, data.Err(), context.Canceled)
}
