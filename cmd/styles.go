package cmd

import "github.com/charmbracelet/lipgloss"

// Centralized styles for consistent UX across views.
var (
	appTitle       = "lemehaute"
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("247"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("51")).Background(lipgloss.Color("236"))
	contentStyle   = lipgloss.NewStyle().Padding(1, 2)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1)
	dividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Right-pane views.
const (
	viewWaves = "waves"
	viewAdd   = "add"
)

func tabs(current string, width int) string {
	// Only waves/add are switchable; the diagram is always visible left.
	names := []string{viewWaves, viewAdd}
	var rendered []string
	for _, n := range names {
		if n == current {
			rendered = append(rendered, activeTabStyle.Render(n))
		} else {
			rendered = append(rendered, tabStyle.Render(n))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
