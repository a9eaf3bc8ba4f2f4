// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create games with a target from a words.Source.
//   - Collect typed letters for the active row.
//   - Validate and apply guesses (length, word list).
//   - Score guesses and track state transitions: playing → won/lost.
//
// A Game has exactly one owner; it is not safe for concurrent use.
package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/tui/internal/words"
)

// Game holds the state of one Wordle game. All fields change only through
// its methods.
type Game struct {
	src       words.Source
	maxRounds int
	scoring   Scoring
	log       zerolog.Logger

	id       string
	answer   string     // lowercase, WordLength letters
	round    int        // index of the row being composed
	guesses  []string   // guesses[r] was submitted in round r
	feedback []Feedback // feedback[r] scores guesses[r]
	input    []rune
	outcome  Outcome
	lastErr  string
	reveal   bool
}

// Option configures a Game.
type Option func(*Game)

// WithMaxRounds sets the number of guesses allowed.
func WithMaxRounds(n int) Option {
	return func(g *Game) { g.maxRounds = n }
}

// WithScoring selects the scoring scheme.
func WithScoring(s Scoring) Option {
	return func(g *Game) { g.scoring = s }
}

// WithLogger sets the logger used for game events.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// New constructs a game and picks its first target. An error from the
// source means there is nothing to play.
func New(src words.Source, opts ...Option) (*Game, error) {
	g := &Game{
		src:       src,
		maxRounds: DefaultMaxRounds,
		scoring:   ScoringSimple,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxRounds < 1 {
		return nil, ErrInvalidRounds
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset starts over with a fresh target. On error the game is unchanged.
func (g *Game) Reset() error {
	ans, err := g.src.PickRandom()
	if err != nil {
		return fmt.Errorf("pick target word: %w", err)
	}
	ans = strings.ToLower(strings.TrimSpace(ans))
	if len(ans) != WordLength {
		return fmt.Errorf("pick target word: %q is not %d letters", ans, WordLength)
	}

	g.id = uuid.NewString()
	g.answer = ans
	g.round = 0
	g.guesses = nil
	g.feedback = nil
	g.input = g.input[:0]
	g.outcome = InProgress
	g.lastErr = ""
	g.reveal = false

	g.log.Info().Str("game", g.id).Int("maxRounds", g.maxRounds).Str("scoring", g.scoring.String()).Msg("new game")
	g.log.Debug().Str("game", g.id).Str("answer", ans).Msg("target chosen")
	return nil
}

// TypeLetter appends r to the active row. Non-letters, a full row and a
// finished game are ignored.
func (g *Game) TypeLetter(r rune) {
	if g.outcome != InProgress || len(g.input) >= WordLength {
		return
	}
	switch {
	case r >= 'a' && r <= 'z':
	case r >= 'A' && r <= 'Z':
		r += 'a' - 'A'
	default:
		return
	}
	g.input = append(g.input, r)
}

// Backspace removes the last typed letter, if any.
func (g *Game) Backspace() {
	if g.outcome != InProgress || len(g.input) == 0 {
		return
	}
	g.input = g.input[:len(g.input)-1]
}

// ToggleReveal flips whether the answer is shown.
func (g *Game) ToggleReveal() {
	g.reveal = !g.reveal
}

// Submit scores the active row.
//
// Validation rules:
//   - Game must not be finished (ErrGameOver, nothing changes).
//   - Input must be exactly WordLength letters (ErrWrongLength).
//   - Input must be in the word list (ErrUnknownWord).
//
// Rejections only update LastError. An accepted guess is recorded and:
//   - all Correct → Won, round unchanged;
//   - otherwise on the last round → Lost;
//   - otherwise the round advances and the input is cleared.
func (g *Game) Submit() (Feedback, error) {
	if g.outcome != InProgress {
		return nil, ErrGameOver
	}
	if len(g.input) != WordLength {
		return nil, g.reject(ErrWrongLength)
	}
	guess := string(g.input)
	if !g.src.Contains(guess) {
		return nil, g.reject(ErrUnknownWord)
	}

	fb := Score(g.answer, guess, g.scoring)
	g.guesses = append(g.guesses, guess)
	g.feedback = append(g.feedback, fb)
	g.lastErr = ""

	switch {
	case fb.Solved():
		g.outcome = Won
	case g.round == g.maxRounds-1:
		g.outcome = Lost
	default:
		g.round++
		g.input = g.input[:0]
	}

	g.log.Debug().Str("game", g.id).Int("round", len(g.guesses)-1).Str("guess", guess).Str("feedback", fb.String()).Msg("guess accepted")
	if g.outcome != InProgress {
		g.log.Info().Str("game", g.id).Str("outcome", g.outcome.String()).Int("guesses", len(g.guesses)).Msg("game over")
	}
	return fb, nil
}

// Guess replaces the active row with word and submits it. A word of the
// wrong length or with non-letters is rejected without touching the row.
func (g *Game) Guess(word string) (Feedback, error) {
	if g.outcome != InProgress {
		return nil, ErrGameOver
	}
	word = strings.TrimSpace(word)
	if utf8.RuneCountInString(word) != WordLength {
		return nil, g.reject(ErrWrongLength)
	}
	word = strings.ToLower(word)
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return nil, g.reject(ErrUnknownWord)
		}
	}
	g.input = append(g.input[:0], []rune(word)...)
	return g.Submit()
}

func (g *Game) reject(err error) error {
	g.lastErr = rejectMessages[err]
	g.log.Debug().Str("game", g.id).Str("input", string(g.input)).Err(err).Msg("guess rejected")
	return err
}

// ID returns the identifier of the current game.
func (g *Game) ID() string { return g.id }

// Round returns the index of the row being composed.
func (g *Game) Round() int { return g.round }

// MaxRounds returns the number of guesses allowed.
func (g *Game) MaxRounds() int { return g.maxRounds }

// Outcome returns the current outcome.
func (g *Game) Outcome() Outcome { return g.outcome }

// Answer returns the target word once the game is over, or "" while it is
// still being played.
func (g *Game) Answer() string {
	if g.outcome == InProgress {
		return ""
	}
	return g.answer
}

// LastError returns the message of the last rejected guess, or "".
func (g *Game) LastError() string { return g.lastErr }

// Input returns the letters typed in the active row.
func (g *Game) Input() string { return string(g.input) }

// Guesses returns a copy of the accepted guesses in round order.
func (g *Game) Guesses() []string {
	return append([]string(nil), g.guesses...)
}

// Feedback returns a copy of the feedback recorded for each guess.
func (g *Game) Feedback() []Feedback {
	out := make([]Feedback, len(g.feedback))
	for i, fb := range g.feedback {
		out[i] = append(Feedback(nil), fb...)
	}
	return out
}

// Snapshot copies the state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		ID:        g.id,
		Rows:      make([]Row, len(g.guesses)),
		Input:     string(g.input),
		Round:     g.round,
		MaxRounds: g.maxRounds,
		Outcome:   g.outcome,
		LastError: g.lastErr,
		Reveal:    g.reveal,
	}
	for i, guess := range g.guesses {
		s.Rows[i] = Row{Guess: guess, Feedback: append(Feedback(nil), g.feedback[i]...)}
	}
	if g.reveal || g.outcome == Lost {
		s.Answer = g.answer
	}
	return s
}

// LetterStates returns the strongest mark seen for each guessed letter.
func (g *Game) LetterStates() map[rune]Mark {
	states := make(map[rune]Mark)
	for i, guess := range g.guesses {
		for j, r := range guess {
			if m := g.feedback[i][j]; m > states[r] {
				states[r] = m
			}
		}
	}
	return states
}
