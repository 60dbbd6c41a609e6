package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/buoy"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/samples"
	"github.com/zweihuehner/le-mehaute-diagram/diagram"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// rendererOptions turns the figure.* and curves.file settings into renderer
// options. extra options are applied last.
func rendererOptions(extra ...diagram.Option) []diagram.Option {
	opts := []diagram.Option{diagram.WithLogger(logger)}
	if w, h := viper.GetFloat64("figure.width"), viper.GetFloat64("figure.height"); w > 0 && h > 0 {
		opts = append(opts, diagram.WithSize(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch))
	}
	if dpi := viper.GetInt("figure.dpi"); dpi > 0 {
		opts = append(opts, diagram.WithDPI(dpi))
	}
	if path := viper.GetString("curves.file"); path != "" {
		opts = append(opts, diagram.WithCurvesFile(path))
	}
	return append(opts, extra...)
}

func newRenderer(extra ...diagram.Option) (*diagram.Renderer, error) {
	return diagram.New(rendererOptions(extra...)...)
}

func newSampleService() (samples.Service, error) {
	return samples.NewFileService(viper.GetString("waves.dir"), logger)
}

func newBuoyService() buoy.Service {
	return buoy.NewService(
		buoy.WithBaseURL(viper.GetString("buoy.base_url")),
		buoy.WithLogger(logger))
}

// addSaved plots every stored sample, oldest first so the newest is drawn on
// top. It returns the samples newest first.
func addSaved(r *diagram.Renderer, svc samples.Service) ([]samples.Sample, error) {
	list, err := svc.List()
	if err != nil {
		return nil, fmt.Errorf("list waves: %w", err)
	}
	for i := len(list) - 1; i >= 0; i-- {
		s := list[i]
		wp, err := s.WavePoint()
		if err != nil {
			logger.Warn("skipping stored wave", zap.String("id", s.ID), zap.Error(err))
			continue
		}
		if err := r.AddWave(wp); err != nil {
			return nil, fmt.Errorf("wave %s: %w", s.ID, err)
		}
	}
	return list, nil
}

// stringSetting prefers an explicitly set flag over the viper key.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	return viper.GetString(key)
}
