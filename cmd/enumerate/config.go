package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings that can come from a YAML file.
// Command line flags take precedence over it.
type Config struct {
	// Start is added to every printed index.
	Start uint `yaml:"start"`
	// Format is either "tsv" or "json".
	Format string `yaml:"format"`
	// LogLevel is the minimum level of the diagnostics written to stderr.
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{Format: FormatTSV}
}

// LoadConfig loads configuration from a YAML file at the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	return cfg, nil
}
