// internal/cli/score.go
//
// `wordle score`: prints the feedback code for an answer and a guess.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/tui/internal/game"
)

var scoreClassic bool

var scoreCmd = &cobra.Command{
	Use:   "score <answer> <guess>",
	Short: "Print the feedback code (G/Y/X) for a guess",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		answer := strings.ToLower(args[0])
		guess := strings.ToLower(args[1])
		for _, w := range []string{answer, guess} {
			if len(w) != game.WordLength || strings.Trim(w, "abcdefghijklmnopqrstuvwxyz") != "" {
				return fmt.Errorf("%q is not a %d-letter word", w, game.WordLength)
			}
		}

		s := game.ScoringSimple
		if scoreClassic {
			s = game.ScoringClassic
		}
		fmt.Fprintln(cmd.OutOrStdout(), game.Score(answer, guess, s))
		return nil
	},
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreClassic, "classic", false, "count repeated letters the classic way")
}
