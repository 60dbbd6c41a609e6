package create

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var createTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))
var faint = lipgloss.NewStyle().Faint(true)
var highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)

// View renders the huh form state and the point the wave will land on.
func View(m *Model) string {
	if m == nil {
		return createTitleStyle.Render("New Wave") + "\n" + faint.Render("(initializing)")
	}
	b := &strings.Builder{}
	fmt.Fprintln(b, createTitleStyle.Render("New Wave"))
	if m.Sample.Source != "" && m.Sample.Source != "manual" {
		fmt.Fprintln(b, faint.Render("from "+m.Sample.Source))
	}

	if m.form != nil && !m.completed {
		fmt.Fprintln(b, m.form.View())
	}
	if m.completed && !m.persisted {
		x, y := m.Sample.Dimensionless()
		fmt.Fprintf(b, "\nReview: %s | d=%gm T=%gs H=%gm | %s %s\n",
			m.Sample.Label, m.Sample.Depth, m.Sample.Period, m.Sample.Height, m.Sample.Marker, m.Sample.Color)
		fmt.Fprintln(b, faint.Render(fmt.Sprintf("d/gT² = %.4g, H/gT² = %.4g", x, y)))
		if !m.confirmed {
			fmt.Fprintln(b, highlight.Render("Press 'y' to confirm save or 'n' to discard & start over."))
		} else {
			fmt.Fprintf(b, "\nConfirmed. Saving wave...\n")
		}
	}
	if m.persisted {
		fmt.Fprintln(b, highlight.Render("Saved "+m.Sample.Label+"."))
	}
	return b.String()
}
