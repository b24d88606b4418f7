package cmd

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/xll-gen/rectviz/internal/config"
	"github.com/xll-gen/rectviz/internal/loader"
	"github.com/xll-gen/rectviz/internal/preview"
	"github.com/xll-gen/rectviz/internal/visualizer"
)

// previewCmd paints the grid of an input file in the terminal.
var previewCmd = &cobra.Command{
	Use:   "preview <input file (txt)>",
	Short: "Show the grid of an input file in the terminal (any key exits)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(args[0])
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

// runPreview loads input, lays it out and hands the grid to the painter.
func runPreview(input string) error {
	v, err := visualizer.LoadFromFile(input, loader.Options{Strict: cfg.IsStrict()})
	if err != nil {
		return err
	}
	_, g := v.Layout()

	palette, err := config.ParsePalette(cfg.Render.Palette)
	if err != nil {
		return err
	}
	painter := preview.NewPainter(palette, cfg.Preview.CellWidth)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	preview.Run(screen, g, painter)
	return nil
}
