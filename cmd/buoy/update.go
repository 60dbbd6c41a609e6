package buoy

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const fetchTimeout = 15 * time.Second

// FetchedMsg reports a completed buoy fetch.
type FetchedMsg struct {
	Summary WaveSummary
	Err     error
}

// FetchCmd performs the HTTP request via svc and returns a FetchedMsg. The
// request is bounded by fetchTimeout and canceled along with ctx.
func FetchCmd(ctx context.Context, svc Service, station string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		ws, err := svc.LatestWave(ctx, station)
		return FetchedMsg{Summary: ws, Err: err}
	}
}

// HandleUpdate starts a fetch on a Refresh request and applies fetched
// data when it arrives. Requests made while a fetch is running are dropped.
func HandleUpdate(ctx context.Context, data *Data, svc Service, msg tea.Msg) (*Data, tea.Cmd) {
	if data == nil {
		return nil, nil
	}
	switch m := msg.(type) {
	case RefreshMsg:
		if data.loading || data.Station == "" {
			return data, nil
		}
		data.loading = true
		return data, FetchCmd(ctx, svc, data.Station)
	case FetchedMsg:
		data.setWave(m.Summary, m.Err)
	}
	return data, nil
}

// RefreshMsg asks HandleUpdate to fetch the latest observation.
type RefreshMsg struct{}

// Refresh is a command emitting RefreshMsg.
func Refresh() tea.Msg { return RefreshMsg{} }
