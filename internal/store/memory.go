// internal/store/memory.go
//
// In-memory record of finished games for the running process.
// Backs the session tally shown in the status bar.
//
// Characteristics:
//   - Stores results keyed by game ID; recording the same ID again replaces it.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.
//   - Errors are returned for missing game IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned by Get for an unknown game ID.
var ErrNotFound = errors.New("store: game not found")

// Result is the summary of one finished game.
type Result struct {
	GameID     string
	Answer     string
	Won        bool
	Guesses    int // accepted guesses, including the winning one
	FinishedAt time.Time
}

// Stats aggregates the recorded results.
type Stats struct {
	Played        int
	Won           int
	CurrentStreak int
	MaxStreak     int
	// Distribution maps a winning guess count to how often it happened.
	Distribution map[int]int
}

// WinRate returns the share of games won in [0, 1].
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Store defines the interface for finished-game results.
type Store interface {
	// Record saves or replaces a result.
	Record(ctx context.Context, r Result) error

	// Get retrieves a result by game ID.
	// Returns ErrNotFound if the game was never recorded.
	Get(ctx context.Context, id string) (Result, error)

	// Stats summarizes every recorded result.
	Stats(ctx context.Context) Stats
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards results and order
	results map[string]Result // keyed by Result.GameID
	order   []string          // game IDs in first-recorded order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]Result)}
}

// Record adds or updates the result in the map.
func (m *memory) Record(ctx context.Context, r Result) error {
	if r.GameID == "" {
		return errors.New("store: result has no game ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[r.GameID]; !ok {
		m.order = append(m.order, r.GameID)
	}
	m.results[r.GameID] = r
	return nil
}

// Get looks up a result by game ID.
func (m *memory) Get(ctx context.Context, id string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[id]; ok {
		return r, nil
	}
	return Result{}, ErrNotFound
}

// Stats walks results in the order they were first recorded.
func (m *memory) Stats(ctx context.Context) Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Stats{Distribution: make(map[int]int)}
	for _, id := range m.order {
		r := m.results[id]
		s.Played++
		if !r.Won {
			s.CurrentStreak = 0
			continue
		}
		s.Won++
		s.CurrentStreak++
		if s.CurrentStreak > s.MaxStreak {
			s.MaxStreak = s.CurrentStreak
		}
		s.Distribution[r.Guesses]++
	}
	return s
}
