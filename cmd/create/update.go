package create

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/samples"
)

// UpdateModel updates the creation form model and returns potential command.
func UpdateModel(m *Model, msg tea.Msg) (*Model, tea.Cmd) {
	if m == nil {
		m = NewModel(samples.Sample{})
		return m, m.Init()
	}

	// If form completed but not confirmed/persisted, watch for confirmation keys.
	if m.AwaitingConfirmation() {
		if km, ok := msg.(tea.KeyMsg); ok {
			s := km.String()
			if s == "y" || s == "enter" { // confirm save
				m.confirmed = true
				return m, nil
			}
			if s == "n" || s == "esc" { // discard and reset
				m = NewModel(samples.Sample{})
				return m, m.Init()
			}
		}
		return m, nil
	}
	cmd := m.Update(msg)
	return m, cmd
}
