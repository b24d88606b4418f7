package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "rectviz.yaml"

// DefaultUnitDimension is the pixel length of the smallest rectangle side.
const DefaultUnitDimension = 100

// DefaultPalette holds the eight fill colours rectangle ids are folded into.
var DefaultPalette = []string{
	"#cccccc",
	"#f4a582",
	"#92c5de",
	"#b8e186",
	"#fdb863",
	"#c2a5cf",
	"#80cdc1",
	"#f1b6da",
}

// Config represents the top-level configuration structure parsed from rectviz.yaml.
type Config struct {
	// Render contains settings for the HTML output.
	Render RenderConfig `yaml:"render"`
	// Input contains settings for reading rectangle files.
	Input InputConfig `yaml:"input"`
	// Preview contains settings for the terminal preview.
	Preview PreviewConfig `yaml:"preview"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig controls the HTML document.
type RenderConfig struct {
	// UnitDimension is the pixel length given to the smallest rectangle side.
	UnitDimension float64 `yaml:"unit_dimension"`
	// Palette lists the fill colours as CSS hex values; ids map to id mod len(Palette).
	Palette []string `yaml:"palette"`
	// MergeCells emits rowspan/colspan cells for runs of equally owned cells.
	MergeCells bool `yaml:"merge_cells"`
	// Title is the document title.
	Title string `yaml:"title"`
}

// InputConfig controls the rectangle loader.
type InputConfig struct {
	// Strict rejects rectangles with top >= bottom or left >= right.
	Strict *bool `yaml:"strict"`
}

// PreviewConfig controls the terminal preview.
type PreviewConfig struct {
	// CellWidth is the number of terminal columns per grid column.
	CellWidth int `yaml:"cell_width"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads and validates the configuration at path.
// A missing file is not an error when optional is true; defaults are returned instead.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Render.UnitDimension == 0 {
		config.Render.UnitDimension = DefaultUnitDimension
	}
	if len(config.Render.Palette) == 0 {
		config.Render.Palette = append([]string(nil), DefaultPalette...)
	}
	if config.Render.Title == "" {
		config.Render.Title = "Rectangles"
	}

	if config.Input.Strict == nil {
		t := true
		config.Input.Strict = &t
	}

	if config.Preview.CellWidth == 0 {
		config.Preview.CellWidth = 2
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors such as unparsable colours or
// non-positive sizes.
func Validate(config *Config) error {
	if config.Render.UnitDimension <= 0 {
		return fmt.Errorf("render.unit_dimension must be positive, got %v", config.Render.UnitDimension)
	}
	if _, err := ParsePalette(config.Render.Palette); err != nil {
		return err
	}

	if config.Preview.CellWidth < 1 {
		return fmt.Errorf("preview.cell_width must be at least 1, got %d", config.Preview.CellWidth)
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// ParsePalette parses CSS hex colours ("#rgb" or "#rrggbb").
func ParsePalette(palette []string) ([]colorful.Color, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("render.palette must not be empty")
	}
	colors := make([]colorful.Color, len(palette))
	for i, s := range palette {
		c, err := colorful.Hex(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("render.palette[%d]: invalid colour %q: %w", i, s, err)
		}
		colors[i] = c
	}
	return colors, nil
}

// IsStrict reports whether degenerate rectangles are rejected.
func (c *Config) IsStrict() bool {
	return c.Input.Strict == nil || *c.Input.Strict
}
