package daily

import (
	"errors"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/tui/internal/words"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC), "2026-10-15"},
		// 05:00 on the 16th at UTC+10 is still the 15th in UTC
		{time.Date(2026, 10, 16, 5, 0, 0, 0, loc), "2026-10-15"},
	}
	for _, tt := range tests {
		if got := DateKey(tt.in); got != tt.want {
			t.Errorf("DateKey(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

	a := WordIndex(day, "salt", 100)
	if a < 0 || a >= 100 {
		t.Fatalf("WordIndex out of range: %d", a)
	}
	if b := WordIndex(day.Add(10*time.Hour), "salt", 100); b != a {
		t.Errorf("same day gave %d and %d", a, b)
	}
	if WordIndex(day, "salt", 0) != 0 {
		t.Error("empty list should give index 0")
	}

	// Different salts should not all collide over a range of days.
	same := 0
	for i := 0; i < 30; i++ {
		d := day.AddDate(0, 0, i)
		if WordIndex(d, "salt", 1000) == WordIndex(d, "pepper", 1000) {
			same++
		}
	}
	if same == 30 {
		t.Error("salt has no effect on the index")
	}
}

func TestSource(t *testing.T) {
	list := words.NewList([]string{"crane", "slate", "mulch", "music"}, []string{"sassy"})
	now := time.Date(2026, 10, 15, 1, 0, 0, 0, time.UTC)
	src := &Source{List: list, Salt: "s", Now: func() time.Time { return now }}

	first, err := src.PickRandom()
	if err != nil {
		t.Fatalf("PickRandom: %v", err)
	}
	want := list.AnswerAt(WordIndex(now, "s", 4))
	if first != want {
		t.Errorf("PickRandom() = %q, want %q", first, want)
	}

	now = now.Add(20 * time.Hour)
	if again, _ := src.PickRandom(); again != first {
		t.Errorf("later the same day got %q, want %q", again, first)
	}

	if !src.Contains("SASSY") || src.Contains("zzzzz") {
		t.Error("Contains should defer to the word list")
	}
}

func TestSource_Empty(t *testing.T) {
	src := NewSource(words.NewList(nil, nil), "s")
	if _, err := src.PickRandom(); !errors.Is(err, words.ErrEmptyVocabulary) {
		t.Errorf("PickRandom() error = %v, want ErrEmptyVocabulary", err)
	}
}
