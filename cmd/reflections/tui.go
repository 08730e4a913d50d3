package main

import (
	"github.com/spf13/cobra"

	"github.com/unowned-ai/reflections/pkg/logging"
	"github.com/unowned-ai/reflections/pkg/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show terminal UI",
	Long: `Open the interactive journal: write today's entry, then press tab for the
dashboard with your mood trend, themes and recent logs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stderr is drawn over by the alt-screen; failures reach the status
		// line instead.
		quiet := logging.NewNop()
		store, b, err := openStoreWithLogger(cmd.Context(), quiet)
		if err != nil {
			return err
		}
		defer b.Close()

		return tui.ShowTUI(tui.Options{
			Store:     store,
			Extractor: cfg.Themes.Extractor(),
			Logger:    quiet,
		})
	},
}
