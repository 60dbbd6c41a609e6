package create

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/samples"
	"github.com/zweihuehner/le-mehaute-diagram/diagram"
)

// ColorOptions are offered in the color select.
var ColorOptions = []string{"orange", "green", "purple", "red", "blue", "black", "gray"}

// Model using huh form
type Model struct {
	Sample    samples.Sample
	form      *huh.Form
	labelStr  string
	depthStr  string
	periodStr string
	heightStr string
	markerStr string
	colorStr  string
	notesStr  string
	persisted bool
	completed bool // form has been completed
	confirmed bool // user confirmed save
}

// NewModel builds an empty form. Fields already set in prefill are filled in.
func NewModel(prefill samples.Sample) *Model {
	m := &Model{
		labelStr:  prefill.Label,
		markerStr: diagram.DefaultMarker,
		colorStr:  ColorOptions[0],
		notesStr:  prefill.Notes,
	}
	if prefill.Depth > 0 {
		m.depthStr = formatFloat(prefill.Depth)
	}
	if prefill.Period > 0 {
		m.periodStr = formatFloat(prefill.Period)
	}
	if prefill.Height > 0 {
		m.heightStr = formatFloat(prefill.Height)
	}
	if prefill.Marker != "" {
		m.markerStr = prefill.Marker
	}
	if prefill.Color != "" {
		m.colorStr = prefill.Color
	}
	m.Sample.Source = prefill.Source
	m.Sample.Size = prefill.Size
	m.Sample.EdgeColor = prefill.EdgeColor
	m.buildForm()
	return m
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func (m *Model) buildForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Label").Value(&m.labelStr).Validate(required),
			huh.NewInput().Title("Depth d (m)").Value(&m.depthStr).Validate(positive),
			huh.NewInput().Title("Period T (s)").Value(&m.periodStr).Validate(positive),
			huh.NewInput().Title("Height H (m)").Value(&m.heightStr).Validate(positive),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Marker").Options(selectOptions(diagram.Markers)...).Value(&m.markerStr),
			huh.NewSelect[string]().Title("Color").Options(selectOptions(colorChoices(m.colorStr))...).Value(&m.colorStr),
			huh.NewText().Title("Notes").Value(&m.notesStr),
		),
	).WithShowHelp(false)
}

// colorChoices keeps a prefilled color selectable.
func colorChoices(current string) []string {
	for _, c := range ColorOptions {
		if c == current {
			return ColorOptions
		}
	}
	return append([]string{current}, ColorOptions...)
}

func selectOptions(vals []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(vals))
	for _, v := range vals {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func positive(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if !(v > 0) {
		return errors.New("must be positive")
	}
	return nil
}

// Init focuses the first field.
func (m *Model) Init() tea.Cmd {
	if m == nil || m.form == nil {
		return nil
	}
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m == nil {
		return nil
	}
	if m.form == nil {
		m.buildForm()
	}
	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted && !m.completed {
		m.completed = true
		m.collect()
	}
	return cmd
}

// collect copies the form values into Sample. Validation already ran on
// every field, so parse errors cannot occur here.
func (m *Model) collect() {
	m.Sample.Label = strings.TrimSpace(m.labelStr)
	m.Sample.Depth, _ = strconv.ParseFloat(strings.TrimSpace(m.depthStr), 64)
	m.Sample.Period, _ = strconv.ParseFloat(strings.TrimSpace(m.periodStr), 64)
	m.Sample.Height, _ = strconv.ParseFloat(strings.TrimSpace(m.heightStr), 64)
	m.Sample.Marker = m.markerStr
	m.Sample.Color = m.colorStr
	m.Sample.Notes = strings.TrimSpace(m.notesStr)
	if m.Sample.Source == "" {
		m.Sample.Source = "manual"
	}
}

// Run shows the form on its own, outside the terminal view, and returns the
// entered sample.
func (m *Model) Run() (samples.Sample, error) {
	if err := m.form.Run(); err != nil {
		return samples.Sample{}, fmt.Errorf("wave form: %w", err)
	}
	m.completed = true
	m.confirmed = true
	m.collect()
	return m.Sample, nil
}

// Aborted reports whether the user left the form.
func (m *Model) Aborted() bool {
	return m != nil && m.form != nil && m.form.State == huh.StateAborted
}

// Submit completes the form with the values entered so far, skipping the
// fields not yet visited. It fails when a value does not validate.
func (m *Model) Submit() error {
	if m == nil {
		return errors.New("no wave form open")
	}
	if m.completed {
		return nil
	}
	checks := []struct {
		field string
		err   error
	}{
		{"label", required(m.labelStr)},
		{"depth", positive(m.depthStr)},
		{"period", positive(m.periodStr)},
		{"height", positive(m.heightStr)},
	}
	for _, c := range checks {
		if c.err != nil {
			return fmt.Errorf("%s: %w", c.field, c.err)
		}
	}
	m.completed = true
	m.collect()
	return nil
}

// AwaitingConfirmation reports whether the form is completed and waits for
// y to save or n/esc to discard.
func (m *Model) AwaitingConfirmation() bool {
	return m != nil && m.completed && !m.confirmed && !m.persisted
}

// IsDoneAndUnpersisted returns true only after user confirmed save.
func (m *Model) IsDoneAndUnpersisted() bool {
	return m != nil && m.completed && m.confirmed && !m.persisted
}

func (m *Model) MarkPersisted() {
	if m != nil {
		m.persisted = true
	}
}
