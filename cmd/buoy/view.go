package buoy

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var buoyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
var buoyInfoStyle = lipgloss.NewStyle().Faint(true)
var buoyErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red

// View renders the state of the last buoy fetch.
func View(data *Data) string {
	b := &strings.Builder{}
	b.WriteString(buoyTitleStyle.Render("Buoy"))
	b.WriteString("\n")
	if data == nil || data.Station == "" {
		b.WriteString(buoyInfoStyle.Render("No buoy configured. Set buoy.station in $HOME/.lemehaute.yaml"))
		return b.String()
	}
	fmt.Fprintf(b, "Station %s, depth %.1f m\n", data.Station, data.Depth)
	switch {
	case data.loading:
		b.WriteString(buoyInfoStyle.Render("fetching..."))
	case data.waveErr != nil:
		b.WriteString(buoyErrStyle.Render("buoy error: " + data.waveErr.Error()))
	case data.wave != nil:
		b.WriteString(data.wave.Time.Format("2006-01-02 15:04 MST"))
		b.WriteString("\n")
		b.WriteString(buoyInfoStyle.Render(data.wave.String()))
	default:
		b.WriteString(buoyInfoStyle.Render("press b to fetch the latest observation"))
	}
	return b.String()
}
