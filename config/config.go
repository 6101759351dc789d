package config

import (
	"errors"
	"fmt"
	"os"

	"cube/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string     `yaml:"log_level"`
	Search     Search     `yaml:"search"`
	Server     Server     `yaml:"server"`
	Experiment Experiment `yaml:"experiment"`
}

type Search struct {
	Depth      int `yaml:"depth"`
	MaxDepth   int `yaml:"max_depth"`
	Goroutines int `yaml:"goroutines"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Experiment struct {
	OutputDir    string `yaml:"output_dir"`
	NumGames     int    `yaml:"num_games"`
	OpeningPlies int    `yaml:"opening_plies"`
	Seed         uint64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		LogLevel: zerolog.InfoLevel.String(),
		Search: Search{
			Depth:      meta.DEPTH,
			MaxDepth:   meta.MAX_DEPTH,
			Goroutines: meta.GO_ROUTINES,
		},
		Server: Server{
			Addr: meta.SERVER_ADDR,
		},
		Experiment: Experiment{
			OutputDir:    "results",
			NumGames:     10,
			OpeningPlies: 2,
			Seed:         1,
		},
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if c.Search.MaxDepth < 1 {
		return fmt.Errorf("%w: search.max_depth must be at least 1, got %d", ErrInvalidConfig, c.Search.MaxDepth)
	}
	if c.Search.Depth < 1 || c.Search.Depth > c.Search.MaxDepth {
		return fmt.Errorf("%w: search.depth must be in [1, %d], got %d", ErrInvalidConfig, c.Search.MaxDepth, c.Search.Depth)
	}
	if c.Search.Goroutines < 1 {
		return fmt.Errorf("%w: search.goroutines must be at least 1, got %d", ErrInvalidConfig, c.Search.Goroutines)
	}
	if c.Experiment.NumGames < 0 || c.Experiment.OpeningPlies < 0 {
		return fmt.Errorf("%w: experiment.num_games and experiment.opening_plies must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Level returns the zerolog level named by LogLevel, info if it does not parse.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
