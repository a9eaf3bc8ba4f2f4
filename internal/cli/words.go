// internal/cli/words.go
//
// `wordle words`: prints how many answers and accepted guesses are loaded.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show how many answers and accepted guesses are loaded",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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
			return err
		}
		a, g := list.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "answers: %d\nallowed: %d\n", a, g)
		return nil
	},
}
