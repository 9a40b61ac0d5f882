package main

import (
	"fmt"
	"os"

	"github.com/atopile/partpick/pkg/config"
)

func loadConfig() (*config.Config, error) {
	configPath := cfgFile
	if configPath == "" {
		configPath = "partpick.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
