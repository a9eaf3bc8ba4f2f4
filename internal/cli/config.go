// internal/cli/config.go
//
// Config loading with flag overrides, logging setup and word list loading
// shared by the commands.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/tui/internal/config"
	"github.com/robalobadob/wordle/apps/tui/internal/game"
	"github.com/robalobadob/wordle/apps/tui/internal/words"
)

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagAnswersFile != "" {
		cfg.Words.AnswersFile = flagAnswersFile
	}
	if flagAllowedFile != "" {
		cfg.Words.AllowedFile = flagAllowedFile
	}
	if f := cmd.Flags().Lookup("classic"); f != nil && f.Changed {
		cfg.Game.Scoring = game.ScoringSimple.String()
		if flagClassic {
			cfg.Game.Scoring = game.ScoringClassic.String()
		}
	}
	if f := cmd.Flags().Lookup("rounds"); f != nil && f.Changed {
		cfg.Game.MaxRounds = flagRounds
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging points the global logger at the configured file, or at
// stderr when the file is "-". The returned func closes the file.
func setupLogging(cfg config.LoggingConfig) (zerolog.Logger, func(), error) {
	if lvl, err := zerolog.ParseLevel(cfg.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var w io.Writer
	closeFn := func() {}
	if cfg.File == "-" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	} else {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return log.Logger, closeFn, nil
}

func loadWords(cfg *config.Config, logger zerolog.Logger) (*words.List, error) {
	list, err := words.Load(words.LoadConfig{
		AnswersFile: cfg.Words.AnswersFile,
		AllowedFile: cfg.Words.AllowedFile,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	return list, nil
}
