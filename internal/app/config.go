package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigRoot   string // directory holding env, settings and friends
	ConfigFormat string // toml, json or hcl
	Pipeline     string

	LogFormat string
	LogLevel  string
	List      bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigFormat == "" {
		cfg.ConfigFormat = "toml"
	}
	if _, err := formatFor(cfg.ConfigFormat); err != nil {
		return nil, err
	}

	if cfg.List {
		return &cfg, nil
	}
	if cfg.Pipeline == "" {
		return nil, errors.New("a pipeline name is required")
	}
	if cfg.ConfigRoot == "" {
		return nil, fmt.Errorf("ConfigRoot is required to run pipeline %q", cfg.Pipeline)
	}
	return &cfg, nil
}
