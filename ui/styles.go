package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/termsweeper/termsweeper/settings"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	border     lipgloss.Style
	cursor     lipgloss.Style
	tile       lipgloss.Style
	flag       lipgloss.Style
	mine       lipgloss.Style
	losingMine lipgloss.Style
	faint      lipgloss.Style
	notice     lipgloss.Style
	counts     [8]lipgloss.Style
}

func newStyles(s settings.Settings) styles {
	st := styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(s.BorderColor)),
		cursor: lipgloss.NewStyle().
			Background(lipgloss.Color(s.CursorColor)).
			Foreground(lipgloss.Color("0")),
		tile: lipgloss.NewStyle().Foreground(lipgloss.Color(s.TileColor)),
		flag: lipgloss.NewStyle().Foreground(lipgloss.Color(s.FlagColor)).Bold(true),
		mine: lipgloss.NewStyle().Foreground(lipgloss.Color(s.MineColor)).Bold(true),
		losingMine: lipgloss.NewStyle().
			Background(lipgloss.Color(s.MineColor)).
			Foreground(lipgloss.Color("15")).Bold(true),
		faint:  lipgloss.NewStyle().Faint(true),
		notice: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	for i, color := range s.CountColors {
		if i >= len(st.counts) {
			break
		}
		st.counts[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}

	return st
}
