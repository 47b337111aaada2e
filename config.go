package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type config struct {
	OutDir string `env:"APPICONS_OUT_DIR" envDefault:"."`
	Debug  bool   `env:"APPICONS_DEBUG"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
