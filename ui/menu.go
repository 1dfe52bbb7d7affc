package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termsweeper/termsweeper/game"
)

// Shoutout Patrick Gillespie: https://patorjk.com/software/taag
const titleArt = ` _____    _____               _____
| | | |  |_   _|___ ___ _____|   __|_ _ _ ___ ___ ___ ___ ___
|-   -|    | | | -_|  _|     |__   | | | | -_| -_| . | -_|  _|
|_|_|_|    |_| |___|_| |_|_|_|_____|_____|___|___|  _|___|_|
                                                 |_|`

type menuEntry struct {
	label      string
	difficulty *game.Difficulty
}

func menuEntries() []menuEntry {
	entries := make([]menuEntry, 0, len(game.Difficulties)+2)
	for i := range game.Difficulties {
		difficulty := &game.Difficulties[i]
		entries = append(entries, menuEntry{
			label: fmt.Sprintf("%s (%dx%d, %d mines)",
				strings.Title(difficulty.Name), difficulty.Width, difficulty.Height, difficulty.NumMines),
			difficulty: difficulty,
		})
	}
	entries = append(entries, menuEntry{label: "Custom"})
	entries = append(entries, menuEntry{label: "Exit"})
	return entries
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := menuEntries()

	switch msg.String() {
	case "up", "k":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down", "j":
		if m.menuIdx < len(entries)-1 {
			m.menuIdx++
		}
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "enter", " ":
		entry := entries[m.menuIdx]
		switch {
		case entry.difficulty != nil:
			m.startGame(*entry.difficulty)
			return m, nil
		case entry.label == "Custom":
			m.screen = customScreen
			m.custom = newCustomForm()
			return m, textinput.Blink
		default:
			return m, tea.Quit
		}
	case "1", "2", "3":
		idx := int(msg.String()[0] - '1')
		if idx < len(game.Difficulties) {
			m.startGame(game.Difficulties[idx])
			return m, nil
		}
	}
	return m, nil
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(titleArt))
	b.WriteString("\n\n")

	for i, entry := range menuEntries() {
		line := fmt.Sprintf("  %s", entry.label)
		if i == m.menuIdx {
			line = m.styles.cursor.Render("> " + entry.label)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.statsFooter())

	if m.notice != "" {
		b.WriteByte('\n')
		b.WriteString(m.styles.notice.Render(m.notice))
	}

	return b.String()
}

// statsFooter summarizes the lifetime statistics below the menu, the way
// the splash screen always has.
func (m Model) statsFooter() string {
	if m.config.Store == nil {
		return ""
	}

	totals := m.config.Store.Totals()
	lines := []string{
		fmt.Sprintf("Games Played: %d", totals.GamesPlayed),
		fmt.Sprintf("Games Won: %d", totals.GamesWon),
		fmt.Sprintf("Win %%: %.1f", totals.WinRatio()*100),
	}
	for _, difficulty := range game.Difficulties {
		record := m.config.Store.Get(difficulty.Name)
		if record.BestTime > 0 {
			lines = append(lines, fmt.Sprintf("Best %s: %s", difficulty.Name, record.BestTime))
		}
	}
	return m.styles.faint.Render(strings.Join(lines, "\n"))
}

// customForm gathers width, height and mine count for a custom game.
type customForm struct {
	inputs []textinput.Model
	focus  int
}

func newCustomForm() customForm {
	labels := []string{"Width", "Height", "Mines"}
	form := customForm{inputs: make([]textinput.Model, len(labels))}

	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = label
		input.CharLimit = 4
		input.Width = 6
		if i == 0 {
			input.Focus()
		}
		form.inputs[i] = input
	}
	return form
}

func (form customForm) values() (width, height, mines int, err error) {
	parse := func(input textinput.Model) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(input.Value()))
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", input.Value())
		}
		return n, nil
	}

	if width, err = parse(form.inputs[0]); err != nil {
		return
	}
	if height, err = parse(form.inputs[1]); err != nil {
		return
	}
	mines, err = parse(form.inputs[2])
	return
}

func (m Model) updateCustom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.screen = menuScreen
		m.notice = ""
		return m, nil

	case "tab", "down":
		m.custom.focus = (m.custom.focus + 1) % len(m.custom.inputs)
		return m, m.focusCustom()

	case "shift+tab", "up":
		m.custom.focus = (m.custom.focus + len(m.custom.inputs) - 1) % len(m.custom.inputs)
		return m, m.focusCustom()

	case "enter":
		if m.custom.focus < len(m.custom.inputs)-1 {
			m.custom.focus++
			return m, m.focusCustom()
		}

		width, height, mines, err := m.custom.values()
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		// Validation of the combination happens in the engine; surface
		// its error here and stay on the form.
		if _, err := game.NewBoard(width, height, mines); err != nil {
			m.notice = err.Error()
			return m, nil
		}

		m.startGame(game.Custom(width, height, mines))
		return m, nil
	}

	var cmd tea.Cmd
	m.custom.inputs[m.custom.focus], cmd = m.custom.inputs[m.custom.focus].Update(msg)
	return m, cmd
}

func (m *Model) focusCustom() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.custom.inputs {
		if i == m.custom.focus {
			cmd = m.custom.inputs[i].Focus()
		} else {
			m.custom.inputs[i].Blur()
		}
	}
	return cmd
}

func (m Model) viewCustom() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Custom game"))
	b.WriteString("\n\n")
	for _, input := range m.custom.inputs {
		b.WriteString(input.View())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.styles.faint.Render("Enter: next/start • Esc: back"))

	if m.notice != "" {
		b.WriteByte('\n')
		b.WriteString(m.styles.notice.Render(m.notice))
	}

	return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
}
