package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
)

var ErrInvalidMatch = errors.New("invalid match settings")

// Engine kinds.
const (
	KindMinimax    = "minimax"
	KindExpectimax = "expectimax"
	KindMCTS       = "mcts"
	KindRandom     = "random"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Redis    Redis  `yaml:"redis"`
	Match    Match  `yaml:"match"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env-default:"false"`
	Host    string        `yaml:"host" env-default:"localhost"`
	Port    string        `yaml:"port" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env-default:"168h"`
}

// Match - how many games to play and who plays them. A Seed of 0 asks for a fresh seed.
type Match struct {
	Games      int    `yaml:"games" env-default:"1"`
	Parallel   int    `yaml:"parallel" env-default:"1"`
	Seed       uint64 `yaml:"seed" env-default:"0"`
	PrintBoard bool   `yaml:"print-board"`
	PlayerX    Engine `yaml:"player-x"`
	PlayerO    Engine `yaml:"player-o"`
}

// Engine - the settings of one player; only the fields its Kind uses are read.
type Engine struct {
	Kind              string  `yaml:"kind" env-default:"mcts"`
	Policy            string  `yaml:"policy" env-default:"line-pattern"`
	Depth             int     `yaml:"depth" env-default:"3"`
	Iterations        int     `yaml:"iterations" env-default:"250"`
	ExplorationWeight float64 `yaml:"exploration-weight" env-default:"0.2"`
	Backprop          string  `yaml:"backprop" env-default:"root"`
	Seed              uint64  `yaml:"seed" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Validate - catches settings that would stop the match before any game is played.
func (that *Config) Validate() error {
	if err := that.Match.Validate(); err != nil {
		return err
	}

	if err := that.Match.PlayerX.Validate(); err != nil {
		return fmt.Errorf("player-x: %w", err)
	}

	if err := that.Match.PlayerO.Validate(); err != nil {
		return fmt.Errorf("player-o: %w", err)
	}

	return nil
}

// Validate - checks the match settings; engine settings are checked when the engines are built.
func (that *Match) Validate() error {
	if that.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidMatch, that.Games)
	}

	if that.Parallel <= 0 {
		return fmt.Errorf("%w: parallel must be positive, got %d", ErrInvalidMatch, that.Parallel)
	}

	return nil
}

// Validate - only the kind is checked here; the rest depends on it and is checked by the engine.
func (that Engine) Validate() error {
	switch that.Kind {
	case KindMinimax, KindExpectimax, KindMCTS, KindRandom:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownEngine, that.Kind)
	}
}

// WithSeed - returns a copy of the engine settings using seed.
func (that Engine) WithSeed(seed uint64) Engine {
	that.Seed = seed

	return that
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
