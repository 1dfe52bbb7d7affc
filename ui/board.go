package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termsweeper/termsweeper/game"
)

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.session.View()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q", "esc":
		// Abandoning an unfinished game records nothing.
		m.session = nil
		m.screen = menuScreen
		m.notice = ""
		return m, nil

	case "up", "w", "k":
		if m.cursorY > 0 {
			m.cursorY--
		}
	case "down", "s", "j":
		if m.cursorY < view.Height-1 {
			m.cursorY++
		}
	case "left", "a", "h":
		if m.cursorX > 0 {
			m.cursorX--
		}
	case "right", "d", "l":
		if m.cursorX < view.Width-1 {
			m.cursorX++
		}

	case " ", "enter":
		if m.session.Status().Finished() {
			m.startGame(m.session.Difficulty())
			return m, nil
		}

		starting := m.session.Status() == game.NotStarted

		p := game.Point{X: m.cursorX, Y: m.cursorY}
		var err error
		if view.Cells[m.cursorY][m.cursorX].State == game.Revealed {
			err = m.session.Chord(p)
		} else {
			err = m.session.Activate(p)
		}
		m.reportEngineErr(err)
		m.maybeSaveSnapshot()

		// The first reveal opens the clock; redraw it once a second
		// from here on.
		if starting && m.session.Status() == game.InProgress {
			return m, tick()
		}

	case "f":
		err := m.session.ToggleFlag(game.Point{X: m.cursorX, Y: m.cursorY})
		m.reportEngineErr(err)

	case "c":
		err := m.session.Chord(game.Point{X: m.cursorX, Y: m.cursorY})
		m.reportEngineErr(err)
		m.maybeSaveSnapshot()

	case "r":
		m.startGame(m.session.Difficulty())
		return m, nil
	}

	return m, nil
}

// reportEngineErr surfaces unexpected engine errors in the notice line.
// Rejections of actions on a finished game are part of normal play and
// stay quiet.
func (m *Model) reportEngineErr(err error) {
	switch {
	case err == nil:
		m.notice = ""
	case errors.Is(err, game.ErrGameOver):
	case errors.Is(err, game.ErrIllegalState):
	default:
		m.notice = err.Error()
	}
}

func (m Model) viewBoard() string {
	view := m.session.View()
	s := m.config.Settings

	var board strings.Builder
	for y := 0; y < view.Height; y++ {
		if y > 0 {
			board.WriteByte('\n')
		}
		for x := 0; x < view.Width; x++ {
			char, style := m.renderCell(view.Cells[y][x])
			content := fmt.Sprintf(" %s ", char)
			if x == m.cursorX && y == m.cursorY {
				board.WriteString(m.styles.cursor.Render(content))
			} else {
				board.WriteString(style.Render(content))
			}
		}
	}

	status := "playing"
	switch m.session.Status() {
	case game.NotStarted:
		status = "ready"
	case game.Won:
		status = "WON"
	case game.Lost:
		status = "LOST"
	}

	header := fmt.Sprintf(" %s %03d  %s  %03.0fs",
		s.MineChar, view.MinesLeft, status, m.session.Elapsed().Seconds())

	help := "Move: arrows/wasd • Reveal: space • Flag: f • Chord: c • Quit: q"
	if m.session.Status().Finished() {
		help = "Space/r: play again • q: menu"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.header.Render(header),
		m.styles.border.Render(board.String()),
		m.styles.faint.Render(help),
	)
}

func (m Model) renderCell(cell game.CellView) (string, lipgloss.Style) {
	s := m.config.Settings

	switch cell.State {
	case game.Flagged:
		if cell.WrongFlag {
			return "x", m.styles.mine
		}
		return s.FlagChar, m.styles.flag
	case game.Questioned:
		return s.QuestionChar, m.styles.flag
	case game.Revealed:
		switch {
		case cell.LosingMine:
			return s.MineChar, m.styles.losingMine
		case cell.Mine:
			return s.MineChar, m.styles.mine
		case cell.Number > 0:
			return fmt.Sprintf("%d", cell.Number), m.styles.counts[cell.Number-1]
		default:
			return "·", m.styles.faint
		}
	default:
		return s.TileChar, m.styles.tile
	}
}
