// internal/config/config.go
//
// Game settings read from the environment (and .env via main).
// Flags in internal/cli override these values.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/wordle/apps/tui/internal/game"
)

// Config holds all application configuration.
type Config struct {
	Words   WordsConfig
	Game    GameConfig
	Logging LoggingConfig
}

// WordsConfig names the optional word list files.
type WordsConfig struct {
	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`
	DailySalt   string `env:"DAILY_SALT" envDefault:"wordle-daily"`
}

// GameConfig holds rule settings.
type GameConfig struct {
	MaxRounds int    `env:"WORDLE_MAX_ROUNDS" envDefault:"6"`
	Scoring   string `env:"WORDLE_SCORING" envDefault:"simple"`
}

// LoggingConfig holds logging settings. File is used while the terminal UI
// owns the screen.
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	File  string `env:"LOG_FILE"`
}

// Load parses the environment and fills in derived defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(os.TempDir(), "wordle.log")
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.Game.MaxRounds < 1 {
		return fmt.Errorf("config: WORDLE_MAX_ROUNDS must be at least 1, got %d", c.Game.MaxRounds)
	}
	if _, err := game.ParseScoring(c.Game.Scoring); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Scoring returns the configured scoring scheme; call Validate first.
func (c *Config) Scoring() game.Scoring {
	s, _ := game.ParseScoring(c.Game.Scoring)
	return s
}
