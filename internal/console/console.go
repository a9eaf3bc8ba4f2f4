// internal/console/console.go
//
// Line-oriented front end for pipes, scripts and terminals without
// full-screen support. Lines starting with / are meta-commands.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/tui/internal/game"
	"github.com/robalobadob/wordle/apps/tui/internal/store"
)

// Console handles line-based interaction with the player.
type Console struct {
	Game      *game.Game
	Results   store.Store
	Log       zerolog.Logger
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a Console on stdin/stdout.
func New(g *game.Game, results store.Store, logger zerolog.Logger) *Console {
	return &Console{
		Game:    g,
		Results: results,
		Log:     logger,
		In:      os.Stdin,
		Out:     os.Stdout,
	}
}

// Run loops prompt → input → dispatch → output until /quit or end of input.
// Only a failure to pick a new word is returned.
func (c *Console) Run() error {
	c.printLine(fmt.Sprintf("Guess the %d-letter word in %d tries. Type /help for commands.", game.WordLength, c.Game.MaxRounds()))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print(c.prompt())
		if !scanner.Scan() {
			c.printLine("")
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			quit, err := c.handleMeta(input)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			continue
		}
		c.guess(input)
	}
}

func (c *Console) prompt() string {
	if c.Game.Outcome() != game.InProgress {
		return "> "
	}
	return fmt.Sprintf("[%d/%d] > ", c.Game.Round()+1, c.Game.MaxRounds())
}

// guess submits one word and prints the result.
func (c *Console) guess(word string) {
	fb, err := c.Game.Guess(word)
	switch {
	case errors.Is(err, game.ErrGameOver):
		c.printLine("The game is over. Type /new for another word.")
		return
	case err != nil:
		c.printLine(c.Game.LastError())
		return
	}

	c.printLine(fmt.Sprintf("%s  %s", strings.ToUpper(word), fb))
	switch c.Game.Outcome() {
	case game.Won:
		c.printLine(fmt.Sprintf("Solved in %d/%d!", len(c.Game.Guesses()), c.Game.MaxRounds()))
		c.record()
	case game.Lost:
		c.printLine(fmt.Sprintf("Out of guesses. The word was %s.", strings.ToUpper(c.Game.Snapshot().Answer)))
		c.record()
	}
}

func (c *Console) record() {
	r := store.Result{
		GameID:     c.Game.ID(),
		Answer:     c.Game.Answer(),
		Won:        c.Game.Outcome() == game.Won,
		Guesses:    len(c.Game.Guesses()),
		FinishedAt: time.Now(),
	}
	if err := c.Results.Record(context.Background(), r); err != nil {
		c.Log.Warn().Err(err).Str("game", r.GameID).Msg("record result")
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *Console) handleMeta(input string) (bool, error) {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printLine("Goodbye.")
		return true, nil

	case "/new":
		if err := c.Game.Reset(); err != nil {
			c.Log.Error().Err(err).Msg("new word")
			return true, err
		}
		c.printLine("New word chosen.")

	case "/reveal":
		c.Game.ToggleReveal()
		if s := c.Game.Snapshot(); s.Reveal {
			c.printLine("Answer: " + strings.ToUpper(s.Answer))
		} else {
			c.printLine("Answer hidden.")
		}

	case "/stats":
		st := c.Results.Stats(context.Background())
		c.printLine(fmt.Sprintf("Played %d | Won %d (%.0f%%) | Streak %d | Best streak %d",
			st.Played, st.Won, st.WinRate()*100, st.CurrentStreak, st.MaxStreak))
		for n := 1; n <= c.Game.MaxRounds(); n++ {
			c.printLine(fmt.Sprintf("  %d: %s %d", n, strings.Repeat("#", st.Distribution[n]), st.Distribution[n]))
		}

	case "/help":
		c.printHelp()

	default:
		c.printLine(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}
	return false, nil
}

func (c *Console) printHelp() {
	for _, line := range []string{
		"Type a 5-letter word and press enter. Feedback per letter:",
		"  G  right letter, right spot",
		"  Y  letter is in the word, wrong spot",
		"  X  letter is not in the word",
		"",
		"  /new     pick a new word",
		"  /reveal  show or hide the answer",
		"  /stats   results for this session",
		"  /quit    exit",
	} {
		c.printLine(line)
	}
}

func (c *Console) print(s string) {
	fmt.Fprint(c.Out, s)
}

func (c *Console) printLine(s string) {
	fmt.Fprintln(c.Out, s)
}
