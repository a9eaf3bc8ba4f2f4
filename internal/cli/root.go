// internal/cli/root.go
//
// Root cobra command and subcommand registration.

package cli

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

// Flags shared by the commands that load a vocabulary.
var (
	flagAnswersFile string
	flagAllowedFile string
)

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Guess the five-letter word in the terminal",
	Long: `wordle is a terminal word-guessing game. You have a fixed number of tries
(six unless --rounds or WORDLE_MAX_ROUNDS says otherwise) to find a secret
five-letter word. After each guess every letter is marked as in the right
spot, in the word but elsewhere, or not in the word.

Settings are read from the environment (and a .env file): LOG_LEVEL, LOG_FILE,
WORDS_ANSWERS_FILE, WORDS_ALLOWED_FILE, WORDLE_MAX_ROUNDS, WORDLE_SCORING,
DAILY_SALT. Flags override them.`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAnswersFile, "words", "", "answers file, one word per line")
	rootCmd.PersistentFlags().StringVar(&flagAllowedFile, "allowed", "", "extra accepted guesses, one word per line")

	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "line-by-line mode instead of the full-screen UI")
	rootCmd.Flags().BoolVar(&flagDaily, "daily", false, "play the word of the day")
	rootCmd.Flags().BoolVar(&flagClassic, "classic", false, "count repeated letters the classic way")
	rootCmd.Flags().IntVar(&flagRounds, "rounds", 0, "number of guesses (default from WORDLE_MAX_ROUNDS)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(scoreCmd)
}
