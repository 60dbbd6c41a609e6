package create

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/samples"
)

func TestValidators(t *testing.T) {
	assert.Error(t, required(" "))
	assert.NoError(t, required("wave"))

	assert.Error(t, positive(""))
	assert.Error(t, positive("abc"))
	assert.Error(t, positive("0"))
	assert.Error(t, positive("-1.5"))
	assert.Error(t, positive("NaN"))
	assert.NoError(t, positive(" 1.42 "))
}

func TestPrefillAndCollect(t *testing.T) {
	m := NewModel(samples.Sample{Label: "buoy 46274", Depth: 20, Period: 12.5, Height: 1.2, Source: "buoy", Color: "teal"})
	assert.Equal(t, "20", m.depthStr)
	assert.Equal(t, "12.5", m.periodStr)
	assert.Equal(t, "teal", m.colorStr)
	assert.Equal(t, "v", m.markerStr)
	assert.Equal(t, []string{"teal", "orange", "green", "purple", "red", "blue", "black", "gray"}, colorChoices("teal"))

	m.collect()
	assert.Equal(t, samples.Sample{Label: "buoy 46274", Depth: 20, Period: 12.5, Height: 1.2, Marker: "v", Color: "teal", Source: "buoy"}, m.Sample)
	require.NoError(t, m.Sample.Validate())
}

func TestCollectDefaultsSourceToManual(t *testing.T) {
	m := NewModel(samples.Sample{})
	m.labelStr, m.depthStr, m.periodStr, m.heightStr = "w", "1", "2", "0.1"
	m.collect()
	assert.Equal(t, "manual", m.Sample.Source)
	assert.Equal(t, ColorOptions, colorChoices(m.colorStr))
}

func TestConfirmFlow(t *testing.T) {
	m := NewModel(samples.Sample{Label: "w", Depth: 1, Period: 2, Height: 0.1})
	m.completed = true
	m.collect()
	assert.False(t, m.IsDoneAndUnpersisted())
	assert.Contains(t, View(m), "Press 'y'")

	m, cmd := UpdateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Nil(t, cmd)
	assert.True(t, m.IsDoneAndUnpersisted())
	assert.Contains(t, View(m), "Confirmed")

	m.MarkPersisted()
	assert.False(t, m.IsDoneAndUnpersisted())
	assert.Contains(t, View(m), "Saved w.")
}

func TestDiscardStartsOver(t *testing.T) {
	m := NewModel(samples.Sample{Label: "w", Depth: 1, Period: 2, Height: 0.1})
	m.completed = true
	m.collect()

	next, _ := UpdateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.NotSame(t, m, next)
	assert.False(t, next.completed)
	assert.Empty(t, next.labelStr)
}

func TestNilModel(t *testing.T) {
	assert.Contains(t, View(nil), "initializing")
	var m *Model
	assert.False(t, m.IsDoneAndUnpersisted())
	assert.False(t, m.Aborted())
	m.MarkPersisted()

	m, _ = UpdateModel(nil, nil)
	require.NotNil(t, m)
	assert.Contains(t, View(m), "New Wave")
}

func TestSubmitSkipsRemainingFields(t *testing.T) {
	m := NewModel(samples.Sample{Label: "w", Depth: 1, Period: 2, Height: 0.1})
	assert.False(t, m.AwaitingConfirmation())

	require.NoError(t, m.Submit())
	assert.True(t, m.AwaitingConfirmation())
	assert.Equal(t, 0.1, m.Sample.Height)
	assert.Contains(t, View(m), "Press 'y'")

	next, _ := UpdateModel(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, next.AwaitingConfirmation())
	assert.Empty(t, next.labelStr)
}

func TestSubmitValidates(t *testing.T) {
	m := NewModel(samples.Sample{Label: "w", Depth: 1, Period: 2})
	err := m.Submit()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height")
	assert.False(t, m.AwaitingConfirmation())

	var none *Model
	assert.Error(t, none.Submit())
	assert.False(t, none.AwaitingConfirmation())
}
