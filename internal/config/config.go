package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"lavaclimb.dev/internal/generation"
)

// Config holds all application configuration
type Config struct {
	ServerAddr        string                   `yaml:"server_addr"`
	DefaultDifficulty string                   `yaml:"default_difficulty"`
	PatternsFile      string                   `yaml:"patterns_file"`
	Physics           generation.PhysicsConfig `yaml:"physics"`

	// DataPath is the directory relative paths in the file resolve against
	DataPath string               `yaml:"-"`
	Patterns []generation.Pattern `yaml:"-"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		ServerAddr:        ":8080",
		DefaultDifficulty: string(generation.Normal),
		Physics:           generation.DefaultPhysicsConfig(),
		DataPath:          "data",
		Patterns:          generation.DefaultPatterns(),
	}
}

// Load reads the YAML config at path and the pattern catalog it names.
// A missing file falls back to defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.DataPath = filepath.Dir(path)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Config %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.ServerAddr = addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	patterns, err := cfg.loadPatterns()
	if err != nil {
		return nil, err
	}
	cfg.Patterns = patterns

	return cfg, nil
}

// Validate fills empty fields and rejects values the generator cannot use
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		c.ServerAddr = ":8080"
	}
	if c.DefaultDifficulty == "" {
		c.DefaultDifficulty = string(generation.Normal)
	}
	level, err := generation.ParseDifficulty(c.DefaultDifficulty)
	if err != nil {
		return fmt.Errorf("default_difficulty invalid: %w", err)
	}
	c.DefaultDifficulty = string(level)

	p := c.Physics
	if p.Gravity <= 0 || p.JumpVelocity <= 0 || p.MoveSpeed <= 0 {
		return fmt.Errorf("physics gravity, jump_velocity and move_speed must be positive")
	}
	if p.PlayerWidth <= 0 || p.PlayerHeight <= 0 {
		return fmt.Errorf("physics player dimensions must be positive")
	}
	apex := p.JumpVelocity * p.JumpVelocity / (2 * p.Gravity)
	if p.SafeJumpHeight <= 0 || p.SafeJumpHeight > apex {
		return fmt.Errorf("physics.safe_jump_height must be in (0, %.1f]", apex)
	}
	return nil
}

// Difficulty returns the parsed default difficulty
func (c *Config) Difficulty() generation.DifficultyLevel {
	level, err := generation.ParseDifficulty(c.DefaultDifficulty)
	if err != nil {
		return generation.Normal
	}
	return level
}

// loadPatterns reads the catalog file, keeping the built-in catalog when
// none is configured or the file is missing
func (c *Config) loadPatterns() ([]generation.Pattern, error) {
	if c.PatternsFile == "" {
		return generation.DefaultPatterns(), nil
	}

	path := c.PatternsFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.DataPath, path)
	}

	patterns, err := LoadPatterns(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Pattern catalog %s not found, using built-in patterns", path)
		return generation.DefaultPatterns(), nil
	}
	return patterns, err
}
