package config

import (
	"errors"
	"fmt"
	"os"

	"antics/meta"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// Agent holds the settings for one of the two agents in a self-play run.
type Agent struct {
	DepthLimit int    `yaml:"depth_limit"`
	Seed       uint64 `yaml:"seed"`
}

// Config holds the settings for a self-play run.
type Config struct {
	Games     int      `yaml:"games"`
	MaxMoves  int      `yaml:"max_moves"`
	LogLevel  string   `yaml:"log_level"`
	OutputDir string   `yaml:"output_dir"`
	Agents    [2]Agent `yaml:"agents"`
}

func Default() *Config {
	return &Config{
		Games:     meta.GAMES,
		MaxMoves:  meta.MAX_MOVES,
		LogLevel:  "info",
		OutputDir: meta.OUTPUT_DIR,
		Agents: [2]Agent{
			{DepthLimit: meta.DEPTH_LIMIT},
			{DepthLimit: meta.DEPTH_LIMIT},
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults. LOG_LEVEL in the environment wins over the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.LogLevel = envOrDefault("LOG_LEVEL", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d: %w", c.Games, ErrInvalid)
	}
	if c.MaxMoves <= 0 {
		return fmt.Errorf("max_moves must be positive, got %d: %w", c.MaxMoves, ErrInvalid)
	}
	for i, agent := range c.Agents {
		if agent.DepthLimit < 1 {
			return fmt.Errorf("agent %d depth_limit must be at least 1, got %d: %w", i, agent.DepthLimit, ErrInvalid)
		}
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
