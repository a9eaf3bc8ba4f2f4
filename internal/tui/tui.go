// internal/tui/tui.go
//
// Bubble Tea terminal UI for the game engine.
// The model owns the Game while the program runs and records each finished
// game in the session tally.

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/tui/internal/game"
	"github.com/robalobadob/wordle/apps/tui/internal/store"
)

// Model is the Bubble Tea model for the game. It is the only owner of the
// Game while the program runs.
type Model struct {
	game    *game.Game
	results store.Store
	log     zerolog.Logger

	keys keyMap
	help help.Model

	width    int
	quitting bool
	err      error // fatal error that ended the program
}

// New creates a TUI model wired to the given game.
func New(g *game.Game, results store.Store, logger zerolog.Logger) Model {
	return Model{
		game:    g,
		results: results,
		log:     logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
// A failure to pick a new word is returned.
func Run(g *game.Game, results store.Store, logger zerolog.Logger) error {
	p := tea.NewProgram(New(g, results, logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NewWord):
			if err := m.game.Reset(); err != nil {
				m.log.Error().Err(err).Msg("new word")
				m.err = err
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Reveal):
			m.game.ToggleReveal()

		case key.Matches(msg, m.keys.Submit):
			// Rejections are shown from the game's last error.
			m.game.Submit()
			m.recordIfFinished()

		case key.Matches(msg, m.keys.Delete):
			m.game.Backspace()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case msg.Type == tea.KeyRunes:
			for _, r := range msg.Runes {
				m.game.TypeLetter(r)
			}
		}
	}
	return m, nil
}

// recordIfFinished stores the result once per game.
func (m Model) recordIfFinished() {
	if m.game.Outcome() == game.InProgress {
		return
	}
	ctx := context.Background()
	if _, err := m.results.Get(ctx, m.game.ID()); !errors.Is(err, store.ErrNotFound) {
		return
	}
	r := store.Result{
		GameID:     m.game.ID(),
		Answer:     m.game.Answer(),
		Won:        m.game.Outcome() == game.Won,
		Guesses:    len(m.game.Guesses()),
		FinishedAt: time.Now(),
	}
	if err := m.results.Record(ctx, r); err != nil {
		m.log.Warn().Err(err).Str("game", r.GameID).Msg("record result")
	}
}

// View renders title, board, keyboard, message line, status bar and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.game.Snapshot()

	return styleTitle.Render("W O R D L E") + "\n\n" +
		renderBoard(snap) + "\n\n" +
		renderKeyboard(m.game.LetterStates()) + "\n\n" +
		renderMessage(snap) + "\n\n" +
		m.renderStatusBar(snap) + "\n" +
		m.help.View(m.keys)
}
