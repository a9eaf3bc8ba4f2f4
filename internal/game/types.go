// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - Feedback: the marks for one guess, encoded as G/Y/X.
//   - Outcome: InProgress → Won | Lost.
//   - Snapshot: the read-only view handed to renderers.

package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// WordLength is the number of letters per guess.
	WordLength = 5
	// DefaultMaxRounds is the number of guesses a player gets.
	DefaultMaxRounds = 6
)

// Mark represents the evaluation result for a single letter in a guess.
// The zero value means "not evaluated"; higher values are stronger
// information, which LetterStates relies on.
type Mark int

const (
	MarkUnknown Mark = iota
	MarkAbsent       // letter is not in the answer
	MarkPresent      // letter is in the answer at another position
	MarkCorrect      // letter is in the right position
)

// Code returns the single-letter encoding: G (correct), Y (present), X (absent).
func (m Mark) Code() byte {
	switch m {
	case MarkCorrect:
		return 'G'
	case MarkPresent:
		return 'Y'
	case MarkAbsent:
		return 'X'
	default:
		return '?'
	}
}

func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkPresent:
		return "present"
	case MarkAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// Feedback is the per-position result for one guess.
type Feedback []Mark

// String encodes the feedback as e.g. "GGXXY".
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, m := range f {
		b.WriteByte(m.Code())
	}
	return b.String()
}

// Solved reports whether every position is correct.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// Outcome is the coarse game state. Won and Lost are terminal.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Scoring selects how repeated letters are evaluated.
type Scoring int

const (
	// ScoringSimple judges each position on its own: a letter that occurs
	// anywhere in the answer is Present, however many times it is guessed.
	ScoringSimple Scoring = iota
	// ScoringClassic only marks a repeated letter Present as many times as it
	// remains unmatched in the answer.
	ScoringClassic
)

func (s Scoring) String() string {
	if s == ScoringClassic {
		return "classic"
	}
	return "simple"
}

// ParseScoring maps "simple" or "classic" (case-insensitive) to a Scoring.
func ParseScoring(name string) (Scoring, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "simple":
		return ScoringSimple, nil
	case "classic":
		return ScoringClassic, nil
	default:
		return ScoringSimple, fmt.Errorf("game: unknown scoring %q", name)
	}
}

var (
	ErrWrongLength   = errors.New("game: guess must be 5 letters")
	ErrUnknownWord   = errors.New("game: guess is not in the word list")
	ErrGameOver      = errors.New("game: game is over")
	ErrInvalidRounds = errors.New("game: max rounds must be at least 1")
)

// rejectMessages are the player-facing texts stored as the last error.
var rejectMessages = map[error]string{
	ErrWrongLength: "Word must be 5 letters long!",
	ErrUnknownWord: "Word doesn't exist!",
}

// Row is one finished round.
type Row struct {
	Guess    string
	Feedback Feedback
}

// Snapshot is a copy of the game state for display. Answer is empty unless
// the player asked to reveal it or the game was lost.
type Snapshot struct {
	ID        string
	Rows      []Row
	Input     string
	Round     int
	MaxRounds int
	Outcome   Outcome
	LastError string
	Reveal    bool
	Answer    string
}
