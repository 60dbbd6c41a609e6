package samples

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	itemTitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	itemDescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedTitleStyle = itemTitleStyle.Foreground(lipgloss.Color("51"))
	selectedDescStyle  = itemDescStyle.Foreground(lipgloss.Color("245"))
)

type sampleItem struct{ Sample }

func (i sampleItem) Title() string { return i.Label }

func (i sampleItem) Description() string {
	x, y := i.Dimensionless()
	desc := fmt.Sprintf("d=%gm T=%gs H=%gm | d/gT²=%.3g H/gT²=%.3g", i.Depth, i.Period, i.Height, x, y)
	if t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(i.CreatedAt)); err == nil {
		desc += " | " + t.Local().Format("2006-01-02 15:04")
	}
	return desc
}

func (i sampleItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{i.Label, i.Source, i.Notes}, " "))
}

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 1 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(sampleItem)
	if !ok {
		io.WriteString(w, "?")
		return
	}
	title := itemTitleStyle.Render(it.Title())
	desc := itemDescStyle.Render(it.Description())
	if index == m.Index() {
		title = selectedTitleStyle.Render(it.Title())
		desc = selectedDescStyle.Render(it.Description())
	}
	// Highlight filter matches in the raw label before styling.
	if f := strings.TrimSpace(m.FilterValue()); f != "" {
		label := it.Title()
		if pos := strings.Index(strings.ToLower(label), strings.ToLower(f)); pos >= 0 {
			sty := itemTitleStyle
			if index == m.Index() {
				sty = selectedTitleStyle
			}
			title = sty.Render(label[:pos]) + filterMatchStyle.Render(label[pos:pos+len(f)]) + sty.Render(label[pos+len(f):])
		}
	}
	io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, title, desc))
}
