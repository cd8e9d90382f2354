package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// configFile is looked up in the working directory when -config is not given.
const configFile = "boxlayout.toml"

// Config represents the optional boxlayout.toml configuration.
type Config struct {
	// Workers bounds how many documents are computed at once.
	Workers int `toml:"workers"`
	// Format is the default output format, "text" or "yaml".
	Format string `toml:"format"`
	// Rounding snaps results to whole units.
	Rounding bool `toml:"rounding"`
	// CacheSize is the number of cached measurements per node.
	CacheSize int `toml:"cache_size"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.NumCPU(),
		Format:    "text",
		Rounding:  true,
		CacheSize: layout.DefaultCacheSize,
	}
}

// LoadConfig loads the configuration at path. A missing file at the
// default location yields the defaults; a missing explicit path is an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = configFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return config, nil
		}
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func (c Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if err := checkFormat(c.Format); err != nil {
		return err
	}
	if c.CacheSize < 1 || c.CacheSize > layout.MaxCacheSize {
		return fmt.Errorf("cache_size must be between 1 and %d, got %d", layout.MaxCacheSize, c.CacheSize)
	}
	return nil
}

func checkFormat(format string) error {
	switch format {
	case "text", "yaml":
		return nil
	}
	return fmt.Errorf("unknown format %q (want text or yaml)", format)
}
