package termhost

import (
	"fmt"

	"github.com/phanxgames/starfan"
	"github.com/phanxgames/starfan/internal/config"
)

// RunConfig holds terminal settings plus the shared scene settings. Every
// field can be set from a STARFAN_* environment variable.
type RunConfig struct {
	config.Scene

	// CellMargin replaces Scene.Margin, which is in window pixels. It is in
	// canvas pixels (one column, half a row).
	CellMargin float64 `envconfig:"CELL_MARGIN" default:"1"`
	// ShowStatus reserves the bottom row for the star count and key help.
	ShowStatus bool `envconfig:"SHOW_STATUS" default:"true"`
}

// LoadRunConfig reads a RunConfig from the environment.
func LoadRunConfig() (RunConfig, error) {
	var cfg RunConfig
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	if cfg.CellMargin < 0 {
		return cfg, fmt.Errorf("termhost: cell margin %v: %w", cfg.CellMargin, starfan.ErrInvalidArgument)
	}
	if cfg.TPS <= 0 {
		return cfg, fmt.Errorf("termhost: tps %d: %w", cfg.TPS, starfan.ErrInvalidArgument)
	}
	return cfg, nil
}
