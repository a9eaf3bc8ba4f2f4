// internal/cli/play.go
//
// Default command: builds the word source, game and tally, then runs the
// terminal UI or the plain console.

package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/tui/internal/console"
	"github.com/robalobadob/wordle/apps/tui/internal/daily"
	"github.com/robalobadob/wordle/apps/tui/internal/game"
	"github.com/robalobadob/wordle/apps/tui/internal/store"
	"github.com/robalobadob/wordle/apps/tui/internal/tui"
	"github.com/robalobadob/wordle/apps/tui/internal/words"
)

var (
	flagPlain   bool
	flagDaily   bool
	flagClassic bool
	flagRounds  int
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := setupLogging(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	list, err := loadWords(cfg, logger)
	if err != nil {
		log.Error().Err(err).Msg("failed to load word lists")
		return err
	}
	var src words.Source = list
	if flagDaily {
		src = daily.NewSource(list, cfg.Words.DailySalt)
	}

	g, err := game.New(src,
		game.WithMaxRounds(cfg.Game.MaxRounds),
		game.WithScoring(cfg.Scoring()),
		game.WithLogger(logger),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to start game")
		return err
	}
	results := store.NewMemoryStore()

	// Use plain mode if --plain flag or stdout is not a terminal.
	if flagPlain || !isTerminal() {
		c := console.New(g, results, logger)
		c.In = cmd.InOrStdin()
		c.Out = cmd.OutOrStdout()
		return c.Run()
	}
	return tui.Run(g, results, logger)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
