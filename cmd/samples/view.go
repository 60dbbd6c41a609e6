package samples

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
var tableEmptyStyle = lipgloss.NewStyle().Faint(true)
var tableIDStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

// Table renders samples one per row for command output.
func Table(samples []Sample) string {
	if len(samples) == 0 {
		return tableEmptyStyle.Render("No waves stored. Add one with 'lemehaute waves add'.")
	}
	rows := []string{tableHeaderStyle.Render(fmt.Sprintf("%-36s  %-24s %8s %8s %8s %10s %10s", "ID", "LABEL", "d (m)", "T (s)", "H (m)", "d/gT²", "H/gT²"))}
	for _, s := range samples {
		x, y := s.Dimensionless()
		rows = append(rows, tableIDStyle.Render(fmt.Sprintf("%-36s", s.ID))+"  "+
			fmt.Sprintf("%-24s %8g %8g %8g %10.4g %10.4g", truncate(s.Label, 24), s.Depth, s.Period, s.Height, x, y))
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
