// internal/tui/board.go
//
// Rendering of the board, on-screen keyboard, message line and status bar.

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/tui/internal/game"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// tile renders one grid cell.
func tile(letter rune, style lipgloss.Style) string {
	if letter == 0 {
		return styleTileEmpty.Render(" · ")
	}
	return style.Render(" " + strings.ToUpper(string(letter)) + " ")
}

// renderBoard draws finished rows in their feedback colours, the active row
// with what has been typed, and blank rows for the rest.
func renderBoard(s game.Snapshot) string {
	rows := make([]string, 0, s.MaxRounds)
	for r := 0; r < s.MaxRounds; r++ {
		cells := make([]string, game.WordLength)
		switch {
		case r < len(s.Rows):
			row := s.Rows[r]
			for i, letter := range row.Guess {
				cells[i] = tile(letter, markStyle(row.Feedback[i]))
			}
		case r == len(s.Rows) && s.Outcome == game.InProgress:
			typed := []rune(s.Input)
			for i := range cells {
				var letter rune
				if i < len(typed) {
					letter = typed[i]
				}
				cells[i] = tile(letter, styleTileTyped)
			}
		default:
			for i := range cells {
				cells[i] = tile(0, styleTileEmpty)
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n\n")
}

// renderKeyboard draws the alphabet coloured by what is known about each letter.
func renderKeyboard(states map[rune]game.Mark) string {
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			keys = append(keys, keyStyle(states[r]).Render(strings.ToUpper(string(r))))
		}
		lines[i] = strings.Repeat(" ", i) + strings.Join(keys, " ")
	}
	return strings.Join(lines, "\n")
}

// renderMessage picks the single line shown under the keyboard.
func renderMessage(s game.Snapshot) string {
	switch {
	case s.Outcome == game.Won:
		return styleWon.Render(fmt.Sprintf("Solved in %d/%d! Press ctrl+r for a new word.", len(s.Rows), s.MaxRounds))
	case s.Outcome == game.Lost:
		return styleLost.Render("Out of guesses. The word was ") +
			styleAnswer.Render(strings.ToUpper(s.Answer)) +
			styleLost.Render(". Press ctrl+r for a new word.")
	case s.LastError != "":
		return styleError.Render(s.LastError)
	case s.Reveal:
		return "Answer: " + styleAnswer.Render(strings.ToUpper(s.Answer))
	default:
		return ""
	}
}

// renderStatusBar produces a full-width inverted status line showing the
// game, the round, and the session tally.
func (m Model) renderStatusBar(s game.Snapshot) string {
	id := s.ID
	if len(id) > 8 {
		id = id[:8]
	}
	round := s.Round + 1
	if s.Outcome != game.InProgress {
		round = len(s.Rows)
	}
	left := fmt.Sprintf(" Game %s | Round %d/%d", id, round, s.MaxRounds)

	st := m.results.Stats(context.Background())
	right := fmt.Sprintf("Played %d | Won %d | Streak %d ", st.Played, st.Won, st.CurrentStreak)

	width := m.width
	if width == 0 {
		width = lipgloss.Width(left) + lipgloss.Width(right) + 2
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(width).Render(bar)
}
