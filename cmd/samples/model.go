package samples

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List holds stored samples plus the interactive list model.
type List struct {
	Samples []Sample
	list    list.Model
	ready   bool
	width   int
	height  int
	detail  bool // whether we're showing a single sample
}

var (
	statusBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	filterMatchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("219")).Bold(true)
	listTitleBarStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	detailHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")).Underline(true)
	detailMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	faintStyle        = lipgloss.NewStyle().Faint(true)
)

// NewList wraps samples, newest first, for display.
func NewList(samples []Sample) *List {
	return &List{Samples: samples}
}

// Add puts s at the top of the list.
func (l *List) Add(s Sample) {
	l.Samples = append([]Sample{s}, l.Samples...)
	if l.ready {
		l.list.InsertItem(0, sampleItem{s})
	}
}

// Filtering reports whether the user is typing a filter, in which case keys
// belong to the list.
func (l *List) Filtering() bool {
	return l.ready && l.list.FilterState() == list.Filtering
}

// ensureList creates or resizes the list model based on dimensions.
func (l *List) ensureList(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	l.width = width
	l.height = height
	listHeight := max(5, height-6)
	if !l.ready {
		items := make([]list.Item, 0, len(l.Samples))
		for _, s := range l.Samples {
			items = append(items, sampleItem{s})
		}
		lm := list.New(items, itemDelegate{}, width-4, listHeight) // -4 for padding
		lm.Title = "Waves"
		lm.SetShowStatusBar(true)
		lm.SetShowPagination(true)
		lm.SetFilteringEnabled(true)
		lm.Styles.Title = listTitleBarStyle
		lm.Styles.StatusBar = statusBarStyle
		lm.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		lm.Styles.HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
		l.list = lm
		l.ready = true
		return
	}
	l.list.SetSize(width-4, listHeight)
}

// Update handles messages specific to the sample list.
func (l *List) Update(msg tea.Msg, width, height int) tea.Cmd {
	l.ensureList(width, height)
	if !l.ready {
		return nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "esc":
			if l.detail {
				l.detail = false
				return nil
			}
			if l.list.FilterState() == list.Filtering {
				l.list.ResetFilter()
				return nil
			}
		case "enter":
			if l.list.FilterState() != list.Filtering {
				l.detail = true
				return nil
			}
		}
	}
	var cmd tea.Cmd
	l.list, cmd = l.list.Update(msg)
	return cmd
}

// View renders the sample list or the selected sample.
func (l *List) View() string {
	if !l.ready {
		return listTitleBarStyle.Render("Waves") + "\n" + "Loading..."
	}
	if len(l.Samples) == 0 {
		return listTitleBarStyle.Render("Waves") + "\n" + faintStyle.Render("No waves yet. Press 'a' to add one.")
	}
	if l.detail {
		sel, ok := l.list.SelectedItem().(sampleItem)
		if !ok {
			l.detail = false
			return l.list.View()
		}
		x, y := sel.Dimensionless()
		b := &strings.Builder{}
		fmt.Fprintln(b, listTitleBarStyle.Render("Wave"))
		fmt.Fprintln(b)
		fmt.Fprintln(b, detailHeaderStyle.Render(sel.Label))
		fmt.Fprintln(b, detailMetaStyle.Render(fmt.Sprintf("Depth %g m, period %g s, height %g m", sel.Depth, sel.Period, sel.Height)))
		fmt.Fprintln(b, detailMetaStyle.Render(fmt.Sprintf("d/gT² = %.4g, H/gT² = %.4g", x, y)))
		if sel.Source != "" {
			fmt.Fprintln(b, detailMetaStyle.Render("Source: "+sel.Source))
		}
		fmt.Fprintln(b, detailMetaStyle.Render("ID: "+sel.ID))
		if sel.Notes != "" {
			fmt.Fprintln(b)
			fmt.Fprintln(b, sel.Notes)
		}
		fmt.Fprintln(b)
		fmt.Fprintln(b, faintStyle.Render("(esc to go back)"))
		return lipgloss.NewStyle().Width(l.width - 4).Render(b.String())
	}
	return l.list.View()
}
