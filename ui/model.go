// Package ui is the terminal presentation layer: a bubbletea program that
// drives a game.Session through its two mutating commands and renders
// read-only board views. All game rules live in the game package.
package ui

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/termsweeper/termsweeper/game"
	"github.com/termsweeper/termsweeper/settings"
	"github.com/termsweeper/termsweeper/stats"
)

type screen int

const (
	menuScreen screen = iota
	customScreen
	boardScreen
)

// tickMsg redraws the clock once a second while a game is running. The
// elapsed value itself is recomputed from the session's wall-clock delta,
// never accumulated here.
type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Config wires the model's collaborators.
type Config struct {
	Settings settings.Settings
	Store    *stats.Store

	// Difficulty, when non-nil, skips the menu and starts a game.
	Difficulty *game.Difficulty

	// Seed fixes mine placement for every game this run. Zero means a
	// fresh seed per game.
	Seed int64

	// SnapshotDir, when set, receives a YAML snapshot of every finished
	// board.
	SnapshotDir string

	// Board, when non-nil, replays a restored board instead of
	// generating one.
	Board *game.Board
}

type Model struct {
	config Config
	styles styles

	screen   screen
	menuIdx  int
	custom   customForm
	notice   string

	session          *game.Session
	cursorX, cursorY int
	snapshotSaved    bool
}

func NewModel(config Config) Model {
	model := Model{
		config: config,
		styles: newStyles(config.Settings),
		screen: menuScreen,
		custom: newCustomForm(),
	}

	if config.Board != nil {
		model.startSession(game.SessionConfig{Board: config.Board})
	} else if config.Difficulty != nil {
		model.startGame(*config.Difficulty)
	}

	return model
}

// Run plays the program to completion.
func Run(config Config) error {
	_, err := tea.NewProgram(NewModel(config), tea.WithAltScreen()).Run()
	return err
}

// Init starts nothing: the clock tick begins with the first reveal, when
// the session actually starts timing.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.session != nil && m.session.Status() == game.InProgress {
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case menuScreen:
			return m.updateMenu(msg)
		case customScreen:
			return m.updateCustom(msg)
		case boardScreen:
			return m.updateBoard(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case customScreen:
		return m.viewCustom()
	case boardScreen:
		return m.viewBoard()
	default:
		return m.viewMenu()
	}
}

// startGame opens a session for the given difficulty, recording completed
// games into the statistics store.
func (m *Model) startGame(difficulty game.Difficulty) {
	m.startSession(game.SessionConfig{
		Difficulty: difficulty,
		Seed:       m.config.Seed,
		Recorder:   m.config.Store,
	})
}

func (m *Model) startSession(config game.SessionConfig) {
	session, err := game.NewSession(config)
	if err != nil {
		m.notice = err.Error()
		m.screen = menuScreen
		return
	}

	m.session = session
	m.screen = boardScreen
	m.notice = ""
	m.snapshotSaved = false
	view := session.View()
	m.cursorX = view.Width / 2
	m.cursorY = view.Height / 2
}

// maybeSaveSnapshot writes the finished board to the snapshots directory,
// once per game. Failures are logged and otherwise ignored.
func (m *Model) maybeSaveSnapshot() {
	if m.config.SnapshotDir == "" || m.snapshotSaved || !m.session.Status().Finished() {
		return
	}
	m.snapshotSaved = true

	if err := os.MkdirAll(m.config.SnapshotDir, 0o755); err != nil {
		logrus.WithError(err).Warn("snapshot directory unavailable")
		return
	}

	outcome := "loss"
	if m.session.Status() == game.Won {
		outcome = "win"
	}
	name := time.Now().Format("20060102_150405_") + outcome + ".yaml"
	path := filepath.Join(m.config.SnapshotDir, name)

	if err := os.WriteFile(path, []byte(m.session.Snapshot().Serialize()), 0o644); err != nil {
		logrus.WithError(err).Warn("board snapshot not saved")
	}
}
