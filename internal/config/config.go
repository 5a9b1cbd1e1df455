// Package config loads the simulator's settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime knob of the practicesim binary.
type Config struct {
	Seed         int64         `env:"PRACTICESIM_SEED" envDefault:"42"`
	Characters   int           `env:"PRACTICESIM_CHARACTERS" envDefault:"6"`
	DBPath       string        `env:"PRACTICESIM_DB" envDefault:"data/practicesim.db"`
	HTTPAddr     string        `env:"PRACTICESIM_HTTP_ADDR" envDefault:":8080"`
	TickInterval time.Duration `env:"PRACTICESIM_TICK_INTERVAL" envDefault:"1s"`
	Speed        float64       `env:"PRACTICESIM_SPEED" envDefault:"1.0"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
