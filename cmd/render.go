package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zweihuehner/le-mehaute-diagram/diagram"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the diagram with waves to an image file",
	Long: `Render the diagram to a file. The extension of --out picks the format:
png, jpg, tif, svg, pdf or eps.

Waves are given as comma-separated key=value lists:

  lemehaute render --wave d=1.682,T=1.42,H=0.11,label="wave 1",color=green,marker=*

Keys: d (depth, m), T (period, s), H (height, m), label, color (name or
#rrggbb), edge (edge color), marker (o v ^ < > s d D p h *) and size (pt²).`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("out", "o", "", "output file (default from config key output)")
	renderCmd.Flags().StringArrayP("wave", "w", nil, "wave to plot, repeatable")
	renderCmd.Flags().Bool("saved", false, "also plot every stored wave")
	renderCmd.Flags().String("legend", "", "legend location: "+strings.Join(diagram.Locations(), ", "))
	renderCmd.Flags().Bool("no-legend", false, "keep the labels next to the markers")
}

func runRender(cmd *cobra.Command, args []string) error {
	specs, _ := cmd.Flags().GetStringArray("wave")
	saved, _ := cmd.Flags().GetBool("saved")
	noLegend, _ := cmd.Flags().GetBool("no-legend")
	out := stringSetting(cmd, "out", "output")
	loc := stringSetting(cmd, "legend", "legend.loc")

	waves := make([]diagram.WavePoint, 0, len(specs))
	for _, s := range specs {
		wp, err := parseWaveFlag(s)
		if err != nil {
			return err
		}
		waves = append(waves, wp)
	}

	r, err := newRenderer()
	if err != nil {
		return err
	}
	if saved {
		svc, err := newSampleService()
		if err != nil {
			return err
		}
		if _, err := addSaved(r, svc); err != nil {
			return err
		}
	}
	for _, wp := range waves {
		if err := r.AddWave(wp); err != nil {
			return err
		}
	}
	if !noLegend && len(r.Waves()) > 0 {
		if err := r.Legend(loc); err != nil {
			return err
		}
	}
	if err := r.Save(out); err != nil {
		return err
	}
	logger.Debug("render finished", zap.String("out", out), zap.Int("waves", len(r.Waves())))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// parseWaveFlag reads "d=..,T=..,H=..[,label=..][,color=..][,edge=..][,marker=..][,size=..]".
// Values may be double-quoted to include commas.
func parseWaveFlag(val string) (diagram.WavePoint, error) {
	var wp diagram.WavePoint
	seen := map[string]bool{}
	for _, part := range splitPairs(val) {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return wp, fmt.Errorf("wave %q: %q is not key=value", val, part)
		}
		k, v = strings.TrimSpace(k), strings.Trim(strings.TrimSpace(v), `"`)
		if seen[k] {
			return wp, fmt.Errorf("wave %q: duplicate key %q", val, k)
		}
		seen[k] = true

		var err error
		switch k {
		case "d":
			wp.Depth, err = strconv.ParseFloat(v, 64)
		case "T":
			wp.Period, err = strconv.ParseFloat(v, 64)
		case "H":
			wp.Height, err = strconv.ParseFloat(v, 64)
		case "size":
			wp.Style.Size, err = strconv.ParseFloat(v, 64)
		case "label":
			wp.Label = v
		case "color":
			wp.Style.Color, err = diagram.ParseColor(v)
		case "edge":
			wp.Style.EdgeColor, err = diagram.ParseColor(v)
		case "marker":
			if !slices.Contains(diagram.Markers, v) {
				err = fmt.Errorf("%w %q", diagram.ErrUnknownMarker, v)
			}
			wp.Style.Marker = v
		default:
			err = fmt.Errorf("unknown key %q", k)
		}
		if err != nil {
			return wp, fmt.Errorf("wave %q: %s: %w", val, k, err)
		}
	}
	for _, k := range []string{"d", "T", "H"} {
		if !seen[k] {
			return wp, fmt.Errorf("wave %q: missing %s", val, k)
		}
	}
	return wp, nil
}

// splitPairs splits on commas outside double quotes.
func splitPairs(s string) []string {
	var parts []string
	var cur strings.Builder
	quoted := false
	for _, ch := range s {
		switch {
		case ch == '"':
			quoted = !quoted
			cur.WriteRune(ch)
		case ch == ',' && !quoted:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}
