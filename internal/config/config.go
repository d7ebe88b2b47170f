// Package config resolves game settings.
//
// Precedence, lowest first: built-in defaults, optional YAML file,
// WORDLE_* environment variables. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

var ErrInvalid = errors.New("invalid config")

const (
	DefaultWordLength = 5
	DefaultMaxTries   = 6
	DefaultLogLevel   = "warn"
)

// Config holds every tunable of a game run.
type Config struct {
	WordLength int    `yaml:"word_length" env:"WORDLE_WORD_LENGTH"`
	MaxTries   int    `yaml:"max_tries"   env:"WORDLE_MAX_TRIES"`
	WordsFile  string `yaml:"words_file"  env:"WORDLE_WORDS_FILE"`
	Scoring    string `yaml:"scoring"     env:"WORDLE_SCORING"`
	Salt       string `yaml:"salt"        env:"WORDLE_DAILY_SALT"`
	NoColor    bool   `yaml:"no_color"    env:"WORDLE_NO_COLOR"`
	Pause      bool   `yaml:"pause"       env:"WORDLE_PAUSE"`
	LogLevel   string `yaml:"log_level"   env:"LOG_LEVEL"`

	// Seed overrides the calendar-day seed when set.
	Seed *uint64 `yaml:"seed" env:"WORDLE_SEED"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WordLength: DefaultWordLength,
		MaxTries:   DefaultMaxTries,
		Scoring:    game.ScoringContains,
		LogLevel:   DefaultLogLevel,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks sizes and the scoring mode.
func (c Config) Validate() error {
	if c.WordLength <= 0 {
		return fmt.Errorf("%w: word length must be positive, got %d", ErrInvalid, c.WordLength)
	}
	if c.MaxTries <= 0 {
		return fmt.Errorf("%w: max tries must be positive, got %d", ErrInvalid, c.MaxTries)
	}
	if _, err := game.ParseScorer(c.Scoring); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Scorer returns the scoring rule selected by c.Scoring.
func (c Config) Scorer() game.Scorer {
	s, err := game.ParseScorer(c.Scoring)
	if err != nil {
		return game.ScoreContains
	}
	return s
}
