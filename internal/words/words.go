// internal/words/words.go
//
// Vocabulary for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from configured files or fall back to embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply PickRandom and Contains, the two operations the engine depends on.
//
// Word Lists:
//   - "answers": candidate targets (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Loading behavior (Load):
//   1. AnswersFile and AllowedFile both set → answers from the first, allowed guesses from the second.
//   2. Only AllowedFile set → that file is used for both.
//   3. Only AnswersFile set → that file is used for both.
//   4. Neither set → embedded lists from the assets package.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); other lines are dropped.
//   • Lists are normalized to lowercase, and lookups lowercase their input.
//   • A List is never mutated after construction.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/tui/assets"
)

// Length is the number of letters in every playable word.
const Length = 5

// ErrEmptyVocabulary is returned when there is no word to pick.
var ErrEmptyVocabulary = errors.New("words: answers list is empty")

// Source supplies target words and answers membership queries.
type Source interface {
	// PickRandom returns a uniformly random target word.
	PickRandom() (string, error)
	// Contains reports whether word is an accepted guess.
	Contains(word string) bool
}

// List is an immutable vocabulary backed by in-memory sets.
type List struct {
	answers    []string            // candidate targets
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
	intn       func(n int) int
}

// Option customizes a List.
type Option func(*List)

// WithIntn replaces the random index source used by PickRandom.
// intn must return a value in [0, n).
func WithIntn(intn func(n int) int) Option {
	return func(l *List) { l.intn = intn }
}

// LoadConfig names the optional word files.
type LoadConfig struct {
	AnswersFile string
	AllowedFile string
}

// NewList builds a List from raw word slices. Entries are trimmed and
// lowercased; anything that is not a 5-letter word is dropped.
func NewList(answers, allowed []string, opts ...Option) *List {
	ans, _ := normalize(answers)
	extra, _ := normalize(allowed)
	return build(ans, extra, opts...)
}

func build(answers, allowed []string, opts ...Option) *List {
	l := &List{
		answers:    answers,
		answersSet: toSet(answers),
		intn:       cryptoIntn,
	}

	// Ensure all answers are also marked as allowed
	l.allowedSet = toSet(answers)
	for _, w := range allowed {
		l.allowedSet[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the vocabulary described by cfg.
// Returns ErrEmptyVocabulary if the answers list ends up empty.
func Load(cfg LoadConfig, logger zerolog.Logger, opts ...Option) (*List, error) {
	var rawAnswers, rawAllowed []string
	var err error

	switch {
	// Case 1: both lists provided
	case cfg.AnswersFile != "" && cfg.AllowedFile != "":
		if rawAnswers, err = readWordFile(cfg.AnswersFile); err != nil {
			return nil, err
		}
		if rawAllowed, err = readWordFile(cfg.AllowedFile); err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case cfg.AllowedFile != "":
		if rawAllowed, err = readWordFile(cfg.AllowedFile); err != nil {
			return nil, err
		}
		rawAnswers = rawAllowed

	// Case 3: an answers file alone is its own allowed list
	case cfg.AnswersFile != "":
		if rawAnswers, err = readWordFile(cfg.AnswersFile); err != nil {
			return nil, err
		}

	// Case 4: fallback to embedded defaults
	default:
		if rawAnswers, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("words: embedded answers: %w", err)
		}
		if rawAllowed, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("words: embedded allowed: %w", err)
		}
	}

	answers, dropped := normalize(rawAnswers)
	if dropped > 0 {
		logger.Warn().Int("dropped", dropped).Msg("ignored answers that are not 5-letter words")
	}
	allowed, dropped := normalize(rawAllowed)
	if dropped > 0 {
		logger.Warn().Int("dropped", dropped).Msg("ignored guesses that are not 5-letter words")
	}
	if len(answers) == 0 {
		return nil, ErrEmptyVocabulary
	}

	l := build(answers, allowed, opts...)
	a, g := l.Stats()
	logger.Debug().Int("answers", a).Int("allowed", g).Msg("word lists loaded")
	return l, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	lines, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return lines, nil
}

// normalize lowercases and trims every entry, keeping valid 5-letter words
// once each. It also reports how many non-empty entries were rejected.
func normalize(in []string) (out []string, dropped int) {
	seen := make(map[string]struct{}, len(in))
	for _, line := range in {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" {
			continue
		}
		if len(w) != Length || !isAlpha(w) {
			dropped++
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, dropped
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// cryptoIntn returns a cryptographically random index in [0, n).
func cryptoIntn(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("words: crypto/rand failed: %v", err))
	}
	return int(nBig.Int64())
}

// PickRandom returns a uniformly random answer.
func (l *List) PickRandom() (string, error) {
	if len(l.answers) == 0 {
		return "", ErrEmptyVocabulary
	}
	return l.answers[l.intn(len(l.answers))], nil
}

// Contains reports whether w is a valid guess (answers ∪ guesses).
func (l *List) Contains(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// AnswerAt returns the i-th answer; i must be in [0, len(answers)).
func (l *List) AnswerAt(i int) string {
	return l.answers[i]
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
