package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/xll-gen/rectviz/internal/config"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the configuration file and terminal support for preview",
	// Configuration problems are reported below instead of aborting.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		printHeader(w, "Checking environment...")

		checkConfig(w, cfgFile)
		checkTerminal(w)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// checkConfig reports whether path exists and loads cleanly.
func checkConfig(w io.Writer, path string) bool {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		printWarning(w, "Config", fmt.Sprintf("%s not found, using defaults (run `rectviz init`)", path))
		return true
	}

	loaded, err := config.Load(path, false)
	if err != nil {
		printError(w, "Config", err.Error())
		return false
	}
	printSuccess(w, "Config", fmt.Sprintf("%s (%d colours, unit %vpx)", path, len(loaded.Render.Palette), loaded.Render.UnitDimension))
	return true
}

// checkTerminal verifies a tcell screen can be opened for the preview command.
func checkTerminal(w io.Writer) {
	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		printWarning(w, "Terminal", fmt.Sprintf("preview unavailable: %v", err))
		return
	}
	colors := screen.Colors()
	screen.Fini()

	if colors < 256 {
		printWarning(w, "Terminal", fmt.Sprintf("%d colours, palette will be approximated", colors))
		return
	}
	printSuccess(w, "Terminal", fmt.Sprintf("%d colours", colors))
}
