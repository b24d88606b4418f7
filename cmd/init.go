package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xll-gen/rectviz/internal/config"
	"github.com/xll-gen/rectviz/internal/templates"
)

// forceInit allows init to overwrite an existing file.
var forceInit bool

// initCmd writes a default configuration file.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default rectviz.yaml (or the --config path)",
	Args:  cobra.MaximumNArgs(1),
	// The existing file may be the broken one being replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if len(args) == 1 {
			path = args[0]
		}
		return runInit(cmd.OutOrStdout(), path, forceInit)
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

// runInit writes the default configuration to path.
// It refuses to replace an existing file unless force is set.
func runInit(w io.Writer, path string, force bool) error {
	printHeader(w, "Initializing configuration")

	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		printWarning(w, "Overwriting", path)
	}

	if err := generateFileFromTemplate(templates.Config, path, config.Default().Render); err != nil {
		return err
	}

	printSuccess(w, "Created", path)
	return nil
}

// generateFileFromTemplate creates a file at destPath using the specified template and data.
func generateFileFromTemplate(tmplName, destPath string, data interface{}) (err error) {
	t, err := templates.Text(tmplName)
	if err != nil {
		return err
	}

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return t.Execute(f, data)
}
