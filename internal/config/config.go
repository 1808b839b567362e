package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the map generator configuration.
type Config struct {
	InputDir  string `json:"input_dir"`  // world save directory
	OutputDir string `json:"output_dir"` // map data directory
	Workers   int    `json:"workers"`    // regions decoded in parallel
	// StrictRegions aborts the run on the first region that fails to decode
	// instead of skipping it.
	StrictRegions bool   `json:"strict_regions"`
	LogFile       string `json:"log_file"` // rotated log file, stdout if empty
	LogLevel      string `json:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
	}
}

// Load reads a JSON config file. A missing file yields an empty Config.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags and are set in the file.
// explicitFlags contains the flag names that were explicitly provided on
// the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["input"] && fromFile.InputDir != "" {
		cfg.InputDir = fromFile.InputDir
	}
	if !explicitFlags["output"] && fromFile.OutputDir != "" {
		cfg.OutputDir = fromFile.OutputDir
	}
	if !explicitFlags["workers"] && fromFile.Workers > 0 {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["strict"] && fromFile.StrictRegions {
		cfg.StrictRegions = true
	}
	if !explicitFlags["log-file"] && fromFile.LogFile != "" {
		cfg.LogFile = fromFile.LogFile
	}
	if !explicitFlags["log-level"] && fromFile.LogLevel != "" {
		cfg.LogLevel = fromFile.LogLevel
	}
}

// Validate checks that the directories needed for a run are set.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input directory required")
	}
	if c.OutputDir == "" {
		return errors.New("output directory required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// RegionDir returns the directory holding the overworld region files.
func (c *Config) RegionDir() string {
	return filepath.Join(c.InputDir, "region")
}

// RegionIndexPath returns the path of the processed region index.
func (c *Config) RegionIndexPath() string {
	return filepath.Join(c.OutputDir, "regions.json")
}
