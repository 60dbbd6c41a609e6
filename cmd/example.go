package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zweihuehner/le-mehaute-diagram/diagram"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Render the bundled example with four waves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		opts := []diagram.Option{diagram.WithLogger(logger)}
		if path := viper.GetString("curves.file"); path != "" {
			opts = append(opts, diagram.WithCurvesFile(path))
		}
		r, err := diagram.NewExample(opts...)
		if err != nil {
			return err
		}
		if err := r.Save(out); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringP("out", "o", "Example_Diagram.png", "output file")
}
