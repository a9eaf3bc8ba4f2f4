// internal/daily/daily.go
//
// Word of the day.
// The date key and salt are hashed with HMAC-SHA256 to pick an index into
// the answers list, so every player sees the same word on the same day.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/tui/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Source serves the same answer for a whole UTC day. Membership checks go
// to the underlying list.
type Source struct {
	List *words.List
	Salt string
	Now  func() time.Time
}

// NewSource returns a Source reading the wall clock.
func NewSource(list *words.List, salt string) *Source {
	return &Source{List: list, Salt: salt, Now: time.Now}
}

// PickRandom returns today's answer.
func (s *Source) PickRandom() (string, error) {
	n, _ := s.List.Stats()
	if n == 0 {
		return "", words.ErrEmptyVocabulary
	}
	return s.List.AnswerAt(WordIndex(s.Now(), s.Salt, n)), nil
}

// Contains reports whether w is an accepted guess.
func (s *Source) Contains(w string) bool {
	return s.List.Contains(w)
}
