// Package config loads host settings from STARFAN_* environment variables.
package config

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/phanxgames/starfan"
)

// Prefix is prepended to every variable name, e.g. STARFAN_TPS.
const Prefix = "STARFAN"

// Scene holds the settings shared by every host. Host configs embed it.
type Scene struct {
	SpawnProbability float64 `envconfig:"SPAWN_PROBABILITY" default:"0.1"`
	SpawnMode        string  `envconfig:"SPAWN_MODE" default:"core"`
	FanStep          float64 `envconfig:"FAN_STEP" default:"-15"`
	TPS              int     `envconfig:"TPS" default:"30"`
	Margin           float64 `envconfig:"MARGIN" default:"10"`
	Debug            bool    `envconfig:"DEBUG" default:"false"`
	// Seed fixes the random source when non-zero.
	Seed uint64 `envconfig:"SEED" default:"0"`
}

// Load fills cfg, a pointer to a struct embedding Scene, from the environment.
func Load(cfg any) error {
	if err := envconfig.Process(Prefix, cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Composition converts the settings into a scene config.
func (s Scene) Composition() (starfan.Config, error) {
	cfg := starfan.DefaultConfig()
	cfg.SpawnProbability = s.SpawnProbability
	cfg.FanStep = s.FanStep
	cfg.TPS = s.TPS
	switch strings.ToLower(s.SpawnMode) {
	case "", "core":
		cfg.SpawnMode = starfan.SpawnAtCore
	case "random":
		cfg.SpawnMode = starfan.SpawnRandom
	default:
		return cfg, fmt.Errorf("config: spawn mode %q: %w", s.SpawnMode, starfan.ErrInvalidArgument)
	}
	if s.Margin < 0 {
		return cfg, fmt.Errorf("config: margin %v: %w", s.Margin, starfan.ErrInvalidArgument)
	}
	return cfg, nil
}

// NewComposition builds a scene in rect with debug mode and seed applied.
func (s Scene) NewComposition(rect starfan.Rect) (*starfan.Composition, error) {
	cfg, err := s.Composition()
	if err != nil {
		return nil, err
	}
	c, err := starfan.NewComposition(rect, cfg)
	if err != nil {
		return nil, err
	}
	c.SetDebugMode(s.Debug)
	if s.Seed != 0 {
		c.SetRand(rand.New(rand.NewPCG(s.Seed, s.Seed)))
	}
	return c, nil
}
