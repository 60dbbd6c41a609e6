package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zweihuehner/le-mehaute-diagram/cmd/buoy"
	"github.com/zweihuehner/le-mehaute-diagram/diagram"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Open the diagram with the stored waves in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

// terminalBackend shows a renderer in a full-screen bubbletea program.
type terminalBackend struct {
	cfg  uiConfig
	opts []tea.ProgramOption
}

var _ diagram.Backend = (*terminalBackend)(nil)

func (b *terminalBackend) Show(r *diagram.Renderer) error {
	_, err := tea.NewProgram(initialModel(r, b.cfg), b.opts...).Run()
	return err
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := newSampleService()
	if err != nil {
		return err
	}
	// Leaving the view cancels a buoy fetch still in flight.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	backend := &terminalBackend{
		cfg: uiConfig{
			ctx:       ctx,
			store:     store,
			buoySvc:   newBuoyService(),
			buoyData:  buoy.NewData(viper.GetString("buoy.station"), viper.GetFloat64("buoy.depth")),
			legendLoc: viper.GetString("legend.loc"),
			savePath:  viper.GetString("output"),
		},
		opts: []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)},
	}
	r, err := newRenderer(diagram.WithBackend(backend))
	if err != nil {
		return err
	}
	backend.cfg.saved, err = addSaved(r, store)
	if err != nil {
		return err
	}
	return r.Show()
}
