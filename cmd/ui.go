package cmd

import (
	"context"
	"fmt"
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/buoy"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/create"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/samples"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/viewer"
	"github.com/zweihuehner/le-mehaute-diagram/diagram"
)

type model struct {
	ctx       context.Context // parent of buoy fetches
	rightView string          // viewWaves or viewAdd
	diagram   *diagram.Renderer
	store     samples.Service
	waves     *samples.List
	draft     *create.Model
	buoySvc   buoy.Service
	buoyData  *buoy.Data
	pending   *samples.Sample // last buoy reading, offered to the add form
	legendLoc string
	savePath  string
	status    string
	statusErr bool
	width     int
	height    int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

type uiConfig struct {
	ctx       context.Context
	store     samples.Service
	saved     []samples.Sample
	buoySvc   buoy.Service
	buoyData  *buoy.Data
	legendLoc string
	savePath  string
}

func initialModel(r *diagram.Renderer, cfg uiConfig) model {
	ctx := cfg.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return model{
		ctx:       ctx,
		rightView: viewWaves,
		diagram:   r,
		store:     cfg.store,
		waves:     samples.NewList(cfg.saved),
		buoySvc:   cfg.buoySvc,
		buoyData:  cfg.buoyData,
		legendLoc: cfg.legendLoc,
		savePath:  cfg.savePath,
		keys:      keys,
		help:      bhelp.New(),
	}
}

func (m model) Init() tea.Cmd {
	// Just return `nil`, which means "no I/O right now, please."
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	case buoy.FetchedMsg:
		m.applyBuoy(msg)
	}

	m.buoyData, cmd = buoy.HandleUpdate(m.ctx, m.buoyData, m.buoySvc, msg)
	cmds = append(cmds, cmd)

	// propagate updates to active right pane
	switch m.rightView {
	case viewWaves:
		cmds = append(cmds, m.waves.Update(msg, rightPaneWidth(m.width), m.height))
	case viewAdd:
		m.draft, cmd = create.UpdateModel(m.draft, msg)
		cmds = append(cmds, cmd)
		m.persistDraft()
	}
	return m, tea.Batch(cmds...)
}

// handleKey runs the global bindings. Keys typed into the form or the list
// filter are left to the pane, except ctrl+c.
func (m *model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, tea.Quit
	}
	switch m.rightView {
	case viewAdd:
		switch {
		case key.Matches(msg, m.keys.Submit):
			if err := m.draft.Submit(); err != nil {
				m.setError(err)
			}
			return true, nil
		// A completed draft takes esc as "discard" at its confirmation prompt.
		case key.Matches(msg, m.keys.Back) && !m.draft.AwaitingConfirmation():
			m.rightView = viewWaves
			m.draft = nil
			return true, nil
		}
		return false, nil
	case viewWaves:
		if m.waves.Filtering() {
			return false, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, tea.Quit
	case key.Matches(msg, m.keys.Waves):
		m.rightView = viewWaves
	case key.Matches(msg, m.keys.Add):
		prefill := samples.Sample{}
		if m.pending != nil {
			prefill = *m.pending
			m.pending = nil
		}
		m.draft = create.NewModel(prefill)
		m.rightView = viewAdd
		return true, m.draft.Init()
	case key.Matches(msg, m.keys.Legend):
		m.placeLegend()
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Buoy):
		return true, buoy.Refresh
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return false, nil
	}
	return true, nil
}

// persistDraft stores a confirmed form.
func (m *model) persistDraft() {
	if !m.draft.IsDoneAndUnpersisted() {
		return
	}
	m.draft.MarkPersisted()
	m.persist(m.draft.Sample)
}

// persist stores s, lists it and plots it.
func (m *model) persist(s samples.Sample) {
	created, err := m.store.Create(s)
	if err != nil {
		m.setError(err)
		return
	}
	m.waves.Add(created)
	if err := m.plot(created); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("saved " + created.Label)
}

func (m *model) plot(s samples.Sample) error {
	wp, err := s.WavePoint()
	if err != nil {
		return err
	}
	return m.addWave(wp)
}

// addWave plots wp and folds it into the legend when one is shown.
func (m *model) addWave(wp diagram.WavePoint) error {
	if err := m.diagram.AddWave(wp); err != nil {
		return err
	}
	if m.diagram.HasLegend() {
		return m.diagram.Legend(m.legendLoc)
	}
	return nil
}

func (m *model) applyBuoy(msg buoy.FetchedMsg) {
	if msg.Err != nil {
		m.setError(msg.Err)
		return
	}
	wp, err := msg.Summary.WavePoint(m.buoyData.Depth)
	if err != nil {
		m.setError(err)
		return
	}
	if err := m.addWave(wp); err != nil {
		m.setError(err)
		return
	}
	m.pending = &samples.Sample{
		Label:  wp.Label,
		Depth:  wp.Depth,
		Period: wp.Period,
		Height: wp.Height,
		Marker: wp.Style.Marker,
		Source: "buoy " + msg.Summary.Station,
	}
	m.setStatus("plotted " + wp.Label + "; press a to store it")
}

func (m *model) placeLegend() {
	if err := m.diagram.Legend(m.legendLoc); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("legend placed " + m.legendLoc)
}

func (m *model) save() {
	if err := m.diagram.Save(m.savePath); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("saved " + m.savePath)
}

func (m *model) setStatus(s string) { m.status, m.statusErr = s, false }
func (m *model) setError(err error) { m.status, m.statusErr = err.Error(), true }

func (m model) View() string {
	leftW := leftPaneWidth(m.width)
	rightW := rightPaneWidth(m.width)
	bodyH := max(viewer.MinHeight, m.height-6)

	left := viewer.View(m.diagram, leftW-4, bodyH-2)
	var right string
	switch m.rightView {
	case viewWaves:
		right = m.waves.View()
	case viewAdd:
		right = create.View(m.draft)
	default:
		right = "unknown"
	}
	right = lipgloss.JoinVertical(lipgloss.Left, right, "", buoy.View(m.buoyData))

	leftRendered := lipgloss.NewStyle().Width(leftW).Render(contentStyle.Render(left))
	rightRendered := lipgloss.NewStyle().Width(rightW).Render(contentStyle.Render(right))
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, dividerStyle.Render("│"), rightRendered)

	header := headerStyle.Render(appTitle) + " " + tabs(m.rightView, max(0, m.width-10))
	sep := dividerStyle.Render(strings.Repeat("─", max(0, m.width)))
	status := statusStyle.Render(fmt.Sprintf("%d waves", len(m.diagram.Waves())))
	if m.status != "" {
		if m.statusErr {
			status = errorStyle.Render(m.status)
		} else {
			status = statusStyle.Render(m.status)
		}
	}
	foot := m.help.View(m.keys)
	layout := lipgloss.JoinVertical(lipgloss.Left, header, sep, columns, sep, status, foot)
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}

// leftPaneWidth gives the diagram 60% of the screen, at least the chart minimum.
func leftPaneWidth(total int) int {
	return max(viewer.MinWidth+4, int(float64(total)*0.6))
}

// helper to compute right pane width for updates
func rightPaneWidth(total int) int {
	return max(20, total-leftPaneWidth(total)-1)
}
