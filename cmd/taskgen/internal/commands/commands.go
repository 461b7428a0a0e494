package commands

import (
	"fmt"

	"github.com/seedworks/taskgen/internal/config"
)

type Globals struct {
	Debug   bool
	Version string
}

// loadConfig reads the YAML file when given, otherwise starts from
// defaults, then layers the command-line overrides on top.
func loadConfig(path string, output string, seed int64) (config.Config, error) {
	var cfg config.Config
	var err error

	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	} else {
		cfg = config.Default()
	}

	if output != "" {
		cfg.OutputPath = output
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
