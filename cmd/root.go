package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xll-gen/rectviz/internal/config"
	"github.com/xll-gen/rectviz/internal/loader"
	"github.com/xll-gen/rectviz/internal/render"
	"github.com/xll-gen/rectviz/internal/visualizer"
	"github.com/xll-gen/rectviz/pkg/log"
)

var (
	// cfgFile is the path given with --config.
	cfgFile string
	// logLevel and logFile override the logging section of the config.
	logLevel string
	logFile  string
	// mergeCells overrides render.merge_cells when --merge is given.
	mergeCells bool

	// cfg is the effective configuration, loaded before every command runs.
	cfg       *config.Config
	logCloser io.Closer
)

// rootCmd renders an input file of rectangles into an HTML table.
var rootCmd = &cobra.Command{
	Use:   "rectviz <input file (txt)> <output file (html)>",
	Short: "Visualize axis-aligned rectangles as an HTML table",
	Long: `rectviz reads a list of integer rectangles, splits the plane along every
rectangle edge and writes an HTML table with one cell per grid region,
coloured by the rectangle covering it.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Fprintln(cmd.OutOrStdout(), "Required arguments: <input file (txt)> <output file (html)>")
			_ = cmd.Usage()
			return
		}
		if err := runRender(args[0], args[1]); err != nil {
			reportRenderError(cmd.ErrOrStderr(), args[0], args[1], err)
			return
		}
		printSuccess(cmd.OutOrStdout(), "Written", args[1])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Failures are reported once and never change the exit status.
func Execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
	if err != nil {
		printError(rootCmd.ErrOrStderr(), "Error", err.Error())
	}
}

// init initializes the root command and its flags.
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&mergeCells, "merge", false, "merge equally owned cells with rowspan/colspan")
}

// loadSettings resolves the configuration file, applies flag overrides and
// initializes logging.
func loadSettings(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	// The default path is optional; an explicit --config must exist.
	loaded, err := config.Load(cfgFile, !flags.Changed("config"))
	if err != nil {
		return err
	}
	if flags.Changed("merge") {
		loaded.Render.MergeCells = mergeCells
	}
	if flags.Changed("log-level") {
		loaded.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		loaded.Logging.Path = logFile
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}

	closer, err := log.Init(loaded.Logging.Path, loaded.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	cfg, logCloser = loaded, closer
	return nil
}

// runRender executes the full pipeline from input to output path.
func runRender(input, output string) error {
	v, err := visualizer.LoadFromFile(input, loader.Options{Strict: cfg.IsStrict()})
	if err != nil {
		return err
	}
	return v.ProcessToFile(output, render.OptionsFromConfig(cfg))
}

// reportRenderError prints one diagnostic naming the file that failed.
func reportRenderError(w io.Writer, input, output string, err error) {
	switch {
	case errors.Is(err, visualizer.ErrWrite):
		printError(w, "Write", fmt.Sprintf("Unable to write to output file %s!", output))
	case errors.Is(err, visualizer.ErrRead):
		printError(w, "Read", fmt.Sprintf("Unable to read input file %s!", input))
	default:
		printError(w, "Error", "Processing failed")
	}
	fmt.Fprintf(w, "  %v\n", err)
}
