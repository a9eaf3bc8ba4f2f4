// internal/tui/style.go
//
// lipgloss styles for tiles, keys and messages.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/tui/internal/game"
)

// Styles used throughout the TUI.
var (
	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	styleTile = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	styleTileCorrect = styleTile.
				Background(lipgloss.Color("28"))

	styleTilePresent = styleTile.
				Background(lipgloss.Color("178"))

	styleTileAbsent = styleTile.
			Background(lipgloss.Color("238"))

	styleTileTyped = styleTile.
			Background(lipgloss.Color("24"))

	styleTileEmpty = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleKeyUnknown = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleWon = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true)

	styleLost = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleAnswer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Underline(true)

	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

// markStyle returns the tile style for a scored letter.
func markStyle(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkCorrect:
		return styleTileCorrect
	case game.MarkPresent:
		return styleTilePresent
	case game.MarkAbsent:
		return styleTileAbsent
	default:
		return styleTileEmpty
	}
}

// keyStyle returns the on-screen keyboard style for a letter.
func keyStyle(m game.Mark) lipgloss.Style {
	if m == game.MarkUnknown {
		return styleKeyUnknown
	}
	return markStyle(m)
}
