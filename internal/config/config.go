// Package config loads the solver's YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	// CubeSize is the default cube dimension for solve and scramble.
	CubeSize int `yaml:"cube_size"`
	// ScrambleLength is the default number of scramble moves.
	ScrambleLength int `yaml:"scramble_length"`
	// DBPath overrides the default database location when set.
	DBPath string `yaml:"db_path"`

	Solver SolverConfig `yaml:"solver"`

	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`
}

// SolverConfig holds solver behavior toggles.
type SolverConfig struct {
	// CompleteSliceSwap enables the 4-move whole-line exchange. It is fast
	// but scrambles edge wings, so it defaults to off.
	CompleteSliceSwap bool `yaml:"complete_slice_swap"`
	// SanityChecks verifies sticker conservation after every commutator.
	SanityChecks bool `yaml:"sanity_checks"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		CubeSize:       5,
		ScrambleLength: 40,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".nxncube", "config.yaml"), nil
}

// Load reads the config file at path, applying defaults for unset fields.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault loads the file if it exists and returns defaults otherwise.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) validate() error {
	if c.CubeSize < 2 {
		return fmt.Errorf("cube_size must be at least 2, got %d", c.CubeSize)
	}
	if c.ScrambleLength < 0 {
		return fmt.Errorf("scramble_length must not be negative, got %d", c.ScrambleLength)
	}
	return nil
}
