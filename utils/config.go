package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	Strategy            string        `json:"strategy"`
	Workers             int           `json:"workers"`
	MaxGenerations      int           `json:"max_generations"`
	InjectionCount      int           `json:"injection_count"`
	Seed                int64         `json:"seed"`
	UsePatterns         bool          `json:"use_patterns"`
	PatternFile         string        `json:"pattern_file"`
	Screen              bool          `json:"screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		Strategy:            "bounded",
		Workers:             0, // runtime.NumCPU()
		MaxGenerations:      1000,
		InjectionCount:      3,
		Seed:                0, // time based
		UsePatterns:         true,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Errorf("frame_rate must not be negative, got %v", c.FrameRate)
	case c.StagnationThreshold < 0:
		return errors.Errorf("stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.InjectionCount < 0:
		return errors.Errorf("injection_count must not be negative, got %d", c.InjectionCount)
	case c.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
