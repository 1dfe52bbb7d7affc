// Package settings loads the user's display preferences: the glyphs drawn
// for mines, flags and tiles, and the colors used for borders, markings
// and the eight adjacency counts. The engine never sees these; only the
// presentation layer consumes them.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// FileName is the settings file, colocated with the executable.
const FileName = "termsweeper_settings.yaml"

// Settings holds display glyphs and ANSI color codes (as accepted by
// lipgloss: "0".."255").
type Settings struct {
	MineChar     string `yaml:"mine_char"`
	FlagChar     string `yaml:"flag_char"`
	QuestionChar string `yaml:"question_char"`
	TileChar     string `yaml:"tile_char"`

	BorderColor string `yaml:"border_color"`
	TileColor   string `yaml:"tile_color"`
	FlagColor   string `yaml:"flag_color"`
	MineColor   string `yaml:"mine_color"`
	CursorColor string `yaml:"cursor_color"`

	// CountColors styles adjacency counts 1 through 8, in order.
	CountColors []string `yaml:"count_colors"`
}

// Default returns the stock look: classic Minesweeper count coloring on a
// plain ASCII-safe board.
func Default() Settings {
	return Settings{
		MineChar:     "*",
		FlagChar:     "⚑",
		QuestionChar: "?",
		TileChar:     "■",

		BorderColor: "8",
		TileColor:   "7",
		FlagColor:   "9",
		MineColor:   "1",
		CursorColor: "11",

		CountColors: []string{"4", "2", "1", "5", "3", "6", "7", "8"},
	}
}

// DefaultPath places the settings file next to the executable, falling
// back to the working directory.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Load reads settings from path. A missing file returns the defaults and
// writes them back so the user has a file to edit; any other failure
// returns the defaults along with the error. Fields left empty in the
// file keep their default values.
func Load(path string) (Settings, error) {
	defaults := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, Save(path, defaults)
		}
		return defaults, fmt.Errorf("reading %s: %w", path, err)
	}

	loaded := defaults
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return defaults, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(loaded.CountColors) != 8 {
		return defaults, fmt.Errorf("parsing %s: count_colors needs 8 entries, got %d",
			path, len(loaded.CountColors))
	}
	return loaded, nil
}

// Save writes settings to path.
func Save(path string, s Settings) error {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
