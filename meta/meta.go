package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EPISODES defines the number of searches per move.
const EPISODES = 150

// CPUCT defines the exploration constant.
const CPUCT = 0.2

// MAX_DEPTH defines how many plies a single search may descend.
const MAX_DEPTH = 512

// MAX_TURNS defines when a game is stopped without a winner.
const MAX_TURNS = 300

// Config collects the settings the command line can override.
type Config struct {
	Oracle      string  `yaml:"oracle"`
	Seed        uint64  `yaml:"seed"`
	Episodes    int     `yaml:"episodes"`
	CPuct       float64 `yaml:"cpuct"`
	MaxDepth    int     `yaml:"maxDepth"`
	MaxMoves    int     `yaml:"maxMoves"`
	Temperature float64 `yaml:"temperature"`
	GreedyAfter int     `yaml:"greedyAfter"` // 0 keeps sampling all game
	Games       int     `yaml:"games"`
	OutputDir   string  `yaml:"outputDir"`
	LogLevel    string  `yaml:"logLevel"`
}

func Default() Config {
	return Config{
		Oracle:      "uniform",
		Seed:        1,
		Episodes:    EPISODES,
		CPuct:       CPUCT,
		MaxDepth:    MAX_DEPTH,
		MaxMoves:    MAX_TURNS,
		Temperature: 1,
		GreedyAfter: 30,
		Games:       1,
		OutputDir:   "experiments",
		LogLevel:    "info",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	switch {
	case c.Episodes < 2:
		return fmt.Errorf("episodes must be at least 2, got %d", c.Episodes)
	case c.CPuct <= 0:
		return fmt.Errorf("cpuct must be positive, got %g", c.CPuct)
	case c.MaxDepth <= 0:
		return fmt.Errorf("maxDepth must be positive, got %d", c.MaxDepth)
	case c.MaxMoves <= 0:
		return fmt.Errorf("maxMoves must be positive, got %d", c.MaxMoves)
	case c.Temperature < 0:
		return fmt.Errorf("temperature must not be negative, got %g", c.Temperature)
	case c.Games <= 0:
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	return nil
}

func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
