package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Alignment modes for positioning a logo within its allotted box.
const (
	AlignBounds        = "bounds"
	AlignVisualCenter  = "visual-center"
	AlignVisualCenterX = "visual-center-x"
	AlignVisualCenterY = "visual-center-y"
)

// Config holds all normalization options. Validate must pass before any
// per-logo work starts.
type Config struct {
	// Gap is the inter-logo spacing in pixels. Not used by the measurement
	// pipeline itself; recorded in the layout plan for the output builder.
	Gap float64 `yaml:"gap"`

	// BaseSize is the reference dimension in pixels before shape and
	// density adjustment.
	BaseSize float64 `yaml:"baseSize"`

	// ScaleFactor interpolates between equal-width (0) and equal-height (1)
	// normalization.
	ScaleFactor float64 `yaml:"scaleFactor"`

	// DensityAware enables the set-wide density compensation pass.
	DensityAware bool `yaml:"densityAware"`

	// DensityFactor is the strength of density compensation in [0,1].
	// Zero disables the effect exactly.
	DensityFactor float64 `yaml:"densityFactor"`

	// AlignBy selects the alignment mode, one of the Align* constants.
	AlignBy string `yaml:"alignBy"`

	// CropToContent retains a content-box crop of each logo, encoded by
	// the image encoder.
	CropToContent bool `yaml:"cropToContent"`

	// Workers limits concurrent per-logo measurement tasks. Zero means
	// pick automatically from CPU count and available memory.
	Workers int `yaml:"workers"`

	// DPI used when rasterizing vector (PDF) logo sources.
	DPI int `yaml:"dpi"`
}

// Default returns a Config with the documented defaults.
func Default() *Config {
	return &Config{
		Gap:           28,
		BaseSize:      48,
		ScaleFactor:   0.5,
		DensityAware:  true,
		DensityFactor: 0.5,
		AlignBy:       AlignBounds,
		CropToContent: false,
		Workers:       0,
		DPI:           300,
	}
}

// Load reads a YAML config file over the defaults, so absent keys keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate rejects out-of-range options before any processing begins.
func (c *Config) Validate() error {
	if c.BaseSize <= 0 {
		return fmt.Errorf("baseSize must be positive, got %g", c.BaseSize)
	}
	if c.ScaleFactor < 0 || c.ScaleFactor > 1 {
		return fmt.Errorf("scaleFactor must be in [0,1], got %g", c.ScaleFactor)
	}
	if c.DensityFactor < 0 || c.DensityFactor > 1 {
		return fmt.Errorf("densityFactor must be in [0,1], got %g", c.DensityFactor)
	}
	if c.Gap < 0 {
		return fmt.Errorf("gap must not be negative, got %g", c.Gap)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}

	switch c.AlignBy {
	case AlignBounds, AlignVisualCenter, AlignVisualCenterX, AlignVisualCenterY:
	default:
		return fmt.Errorf("unknown alignBy mode: %q", c.AlignBy)
	}

	return nil
}
