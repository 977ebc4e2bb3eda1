package ebitenhost

import (
	"fmt"

	"github.com/phanxgames/starfan"
	"github.com/phanxgames/starfan/internal/config"
)

// RunConfig holds window settings plus the shared scene settings. Every
// field can be set from a STARFAN_* environment variable.
type RunConfig struct {
	config.Scene

	Title     string `envconfig:"TITLE" default:"Star Fan"`
	Width     int    `envconfig:"WIDTH" default:"600"`
	Height    int    `envconfig:"HEIGHT" default:"600"`
	MinWidth  int    `envconfig:"MIN_WIDTH" default:"400"`
	MinHeight int    `envconfig:"MIN_HEIGHT" default:"400"`
	// ShowStatus draws the star count and fan state in the top-left corner.
	ShowStatus bool `envconfig:"SHOW_STATUS" default:"true"`
	// ScreenshotDir receives PNGs taken with the P key or a script.
	ScreenshotDir string `envconfig:"SCREENSHOT_DIR" default:"screenshots"`
	// Script is an optional JSON replay script; see Script.
	Script string `envconfig:"SCRIPT"`
}

// LoadRunConfig reads a RunConfig from the environment.
func LoadRunConfig() (RunConfig, error) {
	var cfg RunConfig
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c RunConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("ebitenhost: window %dx%d: %w", c.Width, c.Height, starfan.ErrInvalidArgument)
	}
	if c.MinWidth > c.Width || c.MinHeight > c.Height {
		return fmt.Errorf("ebitenhost: window %dx%d below minimum %dx%d: %w",
			c.Width, c.Height, c.MinWidth, c.MinHeight, starfan.ErrInvalidArgument)
	}
	return nil
}
