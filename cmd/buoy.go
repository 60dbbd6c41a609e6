package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/samples"
)

var buoyCmd = &cobra.Command{
	Use:   "buoy",
	Short: "Plot the latest NDBC buoy observation",
	Long: `Fetch the latest detailed wave summary of an NDBC station and place it
on the diagram, using the significant wave height and the swell period (or
the average period when no swell period is reported). The water depth of
the site is not reported by the buoy and must be given.`,
	Args: cobra.NoArgs,
	RunE: runBuoy,
}

func init() {
	buoyCmd.Flags().String("station", "", "NDBC station id (default from config key buoy.station)")
	buoyCmd.Flags().Float64("depth", 0, "site water depth in meters (default from config key buoy.depth)")
	buoyCmd.Flags().StringP("out", "o", "", "render the diagram with the observation to this file")
	buoyCmd.Flags().Bool("save", false, "store the observation as a wave sample")
}

func runBuoy(cmd *cobra.Command, args []string) error {
	station := stringSetting(cmd, "station", "buoy.station")
	depth := viper.GetFloat64("buoy.depth")
	if f := cmd.Flags().Lookup("depth"); f.Changed {
		depth, _ = cmd.Flags().GetFloat64("depth")
	}
	out, _ := cmd.Flags().GetString("out")
	save, _ := cmd.Flags().GetBool("save")

	ws, err := newBuoyService().LatestWave(cmd.Context(), station)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s\n", ws.Station, ws.Time.Format("2006-01-02 15:04 MST"), ws.String())

	wp, err := ws.WavePoint(depth)
	if err != nil {
		return err
	}
	x, y := wp.Dimensionless()
	fmt.Fprintf(cmd.OutOrStdout(), "d/gT² = %.4g, H/gT² = %.4g\n", x, y)

	if save {
		svc, err := newSampleService()
		if err != nil {
			return err
		}
		created, err := svc.Create(samples.Sample{
			Label:  wp.Label,
			Depth:  wp.Depth,
			Period: wp.Period,
			Height: wp.Height,
			Marker: wp.Style.Marker,
			Source: "buoy " + ws.Station,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "saved", created.ID)
	}

	if out == "" {
		return nil
	}
	r, err := newRenderer()
	if err != nil {
		return err
	}
	if err := r.AddWave(wp); err != nil {
		return err
	}
	if err := r.Legend(viper.GetString("legend.loc")); err != nil {
		return err
	}
	if err := r.Save(out); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
