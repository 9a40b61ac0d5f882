// Package config loads the picker engine's YAML configuration: tolerance
// digits for the numeric-set algebra, progress reporting behaviour, and the
// picker's diagnostic limits.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the picker engine's configuration.
type Config struct {
	Framework FrameworkConfig `yaml:"framework"`
	Tolerance ToleranceConfig `yaml:"tolerance"`
	Progress  ProgressConfig  `yaml:"progress"`
	Picker    PickerConfig    `yaml:"picker"`
}

// FrameworkConfig contains general engine settings.
type FrameworkConfig struct {
	Version   string `yaml:"version"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// ToleranceConfig controls the relative/absolute rounding digits used by
// set-literal comparisons (numset.RelDigits / numset.AbsDigits).
type ToleranceConfig struct {
	RelDigits int `yaml:"rel_digits"`
	AbsDigits int `yaml:"abs_digits"`
}

// ProgressConfig controls how pick progress is reported.
type ProgressConfig struct {
	Format  string `yaml:"format"`
	Enabled bool   `yaml:"enabled"`
}

// PickerConfig bounds the picker's diagnostic output.
type PickerConfig struct {
	MaxParamsDump int `yaml:"max_params_dump"`
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() *Config {
	return &Config{
		Framework: FrameworkConfig{
			Version:   "v1",
			LogLevel:  "info",
			LogFormat: "text",
		},
		Tolerance: ToleranceConfig{
			RelDigits: 7,
			AbsDigits: 15,
		},
		Progress: ProgressConfig{
			Format:  "text",
			Enabled: true,
		},
		Picker: PickerConfig{
			MaxParamsDump: 5,
		},
	}
}

// Load loads configuration from a YAML file, starting from DefaultConfig
// and falling back to it entirely when path doesn't exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = "partpick.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Tolerance.RelDigits < 1 {
		return fmt.Errorf("tolerance.rel_digits must be at least 1")
	}
	if c.Tolerance.AbsDigits < 1 {
		return fmt.Errorf("tolerance.abs_digits must be at least 1")
	}
	if c.Picker.MaxParamsDump < 1 {
		return fmt.Errorf("picker.max_params_dump must be at least 1")
	}
	switch c.Progress.Format {
	case "text", "json", "none":
	default:
		return fmt.Errorf("progress.format must be one of text, json, none, got %q", c.Progress.Format)
	}
	return nil
}
