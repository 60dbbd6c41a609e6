package viewer

import (
	"image/color"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zweihuehner/le-mehaute-diagram/diagram"
)

func TestViewDrawsLabelsThenLegend(t *testing.T) {
	r, err := diagram.New()
	require.NoError(t, err)
	for _, w := range diagram.ExampleWaves() {
		require.NoError(t, r.AddWave(w))
	}

	out := View(r, 100, 30)
	assert.Contains(t, out, "Shallow")
	assert.Contains(t, out, "Deep")
	assert.NotContains(t, out, "Legend")
	assert.LessOrEqual(t, lipgloss.Height(out), 30)

	require.NoError(t, r.Legend(diagram.LocBest))
	out = View(r, 100, 30)
	assert.Contains(t, out, "Legend")
	assert.Contains(t, out, "example wave 4")
	assert.Contains(t, out, string(MarkerRune("*")))
}

func TestViewTinySizeIsClamped(t *testing.T) {
	r, err := diagram.New()
	require.NoError(t, err)
	out := View(r, 1, 1)
	assert.GreaterOrEqual(t, lipgloss.Height(out), MinHeight)
	assert.Contains(t, View(nil, 10, 10), "no diagram")
}

func TestMarkerRune(t *testing.T) {
	for _, m := range diagram.Markers {
		assert.NotEqual(t, '•', MarkerRune(m), m)
	}
	assert.Equal(t, '•', MarkerRune("?"))
}

func TestHex(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ffa500"), Hex(color.RGBA{R: 255, G: 165, A: 255}))
	assert.Equal(t, lipgloss.Color(""), Hex(nil))
}
