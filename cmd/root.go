package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/termsweeper/termsweeper/game"
	"github.com/termsweeper/termsweeper/settings"
	"github.com/termsweeper/termsweeper/stats"
	"github.com/termsweeper/termsweeper/ui"
)

var (
	difficultyName string
	boardWidth     int
	boardHeight    int
	numMines       int
	seed           int64
	snapshotDir    string
	replayPath     string
)

var rootCmd = &cobra.Command{
	Use:   "termsweeper",
	Short: "Play Minesweeper in your terminal",
	Long: `termsweeper is a terminal Minesweeper game.

Run with no arguments to pick a difficulty from the menu
	termsweeper

Jump straight into a game
	termsweeper --difficulty expert
	termsweeper -w 24 -h 20 -m 80

Statistics are kept per difficulty in a file next to the executable, and
display glyphs and colors can be changed in the settings file alongside it.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := ui.Config{
			Seed:        seed,
			SnapshotDir: snapshotDir,
		}

		loaded, err := settings.Load(settings.DefaultPath())
		if err != nil {
			logrus.WithError(err).Warn("using default display settings")
		}
		config.Settings = loaded

		config.Store = stats.NewStore(stats.DefaultPath())
		if err := config.Store.Load(); err != nil {
			logrus.WithError(err).Warn("statistics unavailable; playing without history")
		}

		difficulty, err := chosenDifficulty(cmd)
		if err != nil {
			return err
		}
		config.Difficulty = difficulty

		if replayPath != "" {
			board, err := loadReplay(replayPath)
			if err != nil {
				return err
			}
			config.Board = board
		}

		return ui.Run(config)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// chosenDifficulty resolves the difficulty flags, nil meaning the menu
// picks. Any explicit dimension flag makes a custom game.
func chosenDifficulty(cmd *cobra.Command) (*game.Difficulty, error) {
	custom := cmd.Flags().Changed("width") || cmd.Flags().Changed("height") || cmd.Flags().Changed("mines")

	if difficultyName != "" {
		if custom {
			return nil, fmt.Errorf("--difficulty cannot be combined with -w/-h/-m")
		}
		for i := range game.Difficulties {
			if game.Difficulties[i].Name == difficultyName {
				return &game.Difficulties[i], nil
			}
		}
		return nil, fmt.Errorf("unknown difficulty %q", difficultyName)
	}

	if custom {
		difficulty := game.Custom(boardWidth, boardHeight, numMines)
		// Fail fast on inconsistent parameters instead of in the menu.
		if _, err := game.NewBoard(difficulty.Width, difficulty.Height, difficulty.NumMines); err != nil {
			return nil, err
		}
		return &difficulty, nil
	}

	return nil, nil
}

func loadReplay(path string) (*game.Board, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading replay: %w", err)
	}
	snapshot, err := game.LoadSnapshot(string(raw))
	if err != nil {
		return nil, err
	}
	return game.RestoreBoard(snapshot)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().StringVarP(&difficultyName, "difficulty", "d", "", "Named difficulty to start with (beginner, intermediate, expert)")
	rootCmd.Flags().IntVarP(&boardWidth, "width", "w", 9, "Width of the game board, in cells")
	rootCmd.Flags().IntVarP(&boardHeight, "height", "h", 9, "Height of the game board, in cells")
	rootCmd.Flags().IntVarP(&numMines, "mines", "m", 10, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Mine placement seed (0 = random)")
	rootCmd.Flags().StringVar(&snapshotDir, "snapshots", "", "Directory to save finished boards to")
	rootCmd.Flags().StringVar(&replayPath, "replay", "", "Board snapshot file to replay")
}
