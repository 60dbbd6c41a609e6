package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/create"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/samples"
)

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Manage stored wave samples",
	Long: `Stored waves live as JSON files in the directory given by waves.dir
(default $HOME/.lemehaute/waves). They are plotted by 'render --saved' and
by the interactive view.`,
}

var wavesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored waves, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newSampleService()
		if err != nil {
			return err
		}
		list, err := svc.List()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), samples.Table(list))
		return nil
	},
}

var wavesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a wave; prompts for anything not given as a flag",
	Args:  cobra.NoArgs,
	RunE:  runWavesAdd,
}

var wavesRmCmd = &cobra.Command{
	Use:     "rm ID...",
	Aliases: []string{"delete"},
	Short:   "Delete stored waves",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newSampleService()
		if err != nil {
			return err
		}
		for _, id := range args {
			if err := svc.Delete(id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted", id)
		}
		return nil
	},
}

func init() {
	f := wavesAddCmd.Flags()
	f.String("label", "", "label shown next to the marker or in the legend")
	f.Float64("depth", 0, "water depth d (m)")
	f.Float64("period", 0, "wave period T (s)")
	f.Float64("height", 0, "wave height H (m)")
	f.String("color", "", "marker color, a name or #rrggbb")
	f.String("edge", "", "marker edge color")
	f.String("marker", "", "marker: o v ^ < > s d D p h *")
	f.Float64("size", 0, "marker area (pt²)")
	f.String("notes", "", "free text")

	wavesCmd.AddCommand(wavesListCmd, wavesAddCmd, wavesRmCmd)
}

func runWavesAdd(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	var s samples.Sample
	s.Label, _ = f.GetString("label")
	s.Depth, _ = f.GetFloat64("depth")
	s.Period, _ = f.GetFloat64("period")
	s.Height, _ = f.GetFloat64("height")
	s.Color, _ = f.GetString("color")
	s.EdgeColor, _ = f.GetString("edge")
	s.Marker, _ = f.GetString("marker")
	s.Size, _ = f.GetFloat64("size")
	s.Notes, _ = f.GetString("notes")
	s.Source = "manual"

	if s.Label == "" || s.Depth <= 0 || s.Period <= 0 || s.Height <= 0 {
		entered, err := create.NewModel(s).Run()
		if err != nil {
			return err
		}
		s = entered
	}

	svc, err := newSampleService()
	if err != nil {
		return err
	}
	created, err := svc.Create(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), created.ID)
	return nil
}
