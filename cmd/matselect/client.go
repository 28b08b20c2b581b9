package main

import (
	"fmt"
	"time"

	"github.com/ahmedawad/matselect/internal/config"
	"github.com/ahmedawad/matselect/internal/mp"
)

// loadMergedConfig loads the optional config file and applies flag values on
// top: flags override the file, the file overrides built-in defaults.
func loadMergedConfig(path string, flagCfg config.Config) (config.Config, error) {
	if path == "" {
		return flagCfg, nil
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}

	merged := flagCfg.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// buildClient constructs the Materials Project client from configuration.
func buildClient(cfg config.Config) (*mp.Client, error) {
	opts := mp.DefaultOptions()
	if cfg.BaseURL != "" {
		opts.BaseURL = cfg.BaseURL
	}
	if cfg.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return mp.NewClient(cfg.APIKey, opts)
}
