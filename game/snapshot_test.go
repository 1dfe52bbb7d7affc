package game

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSnapshotSerializeRoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1, 0)}
	session := newTestSession(t, SessionConfig{
		Board: boardFromLayout(t,
			"O##",
			"###",
			"##O",
		),
		Clock: clock.Now,
	})

	if err := session.Activate(Point{X: 2, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if err := session.ToggleFlag(Point{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}

	snapshot := session.Snapshot()
	parsed, err := LoadSnapshot(snapshot.Serialize())
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if parsed.SerializedBoard != snapshot.SerializedBoard {
		t.Errorf("board did not round-trip:\n%q\n%q", snapshot.SerializedBoard, parsed.SerializedBoard)
	}
	if parsed.Seed != snapshot.Seed || parsed.Difficulty != snapshot.Difficulty {
		t.Errorf("metadata did not round-trip: %+v vs %+v", parsed, snapshot)
	}

	if !strings.Contains(parsed.SerializedBoard, "F") {
		t.Error("flagged mine missing from serialized board")
	}
	if !strings.Contains(parsed.SerializedBoard, ".") {
		t.Error("revealed cell missing from serialized board")
	}
}

func TestRestoreBoardRebuildsMineLayout(t *testing.T) {
	board := boardFromLayout(t,
		"O#f",
		"#*#",
		".#F",
	)

	// Flags, reveals and the losing-mine marker all restore to a fresh
	// hidden board; only the mine layout survives.
	wantMines := map[Point]bool{{0, 0}: true, {1, 1}: true, {2, 2}: true}
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			if cell.IsMine() != wantMines[cell.Point()] {
				t.Errorf("cell %v mine = %v", cell.Point(), cell.IsMine())
			}
			if cell.State() != Hidden {
				t.Errorf("cell %v state %v, want Hidden", cell.Point(), cell.State())
			}
		}
	}
	if !board.Placed() {
		t.Error("restored board should count as placed")
	}
	if board.NumMines() != 3 {
		t.Errorf("restored %d mines, want 3", board.NumMines())
	}

	// Adjacency counts come back too.
	if got := board.CellAt(1, 0).NumMines(); got != 2 {
		t.Errorf("adjacency at (1, 0) = %d, want 2", got)
	}
}

func TestRestoreBoardRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		board string
	}{
		{"empty", ""},
		{"uneven rows", "O##\n##"},
		{"unknown rune", "O#!\n###"},
		{"no mines", "###\n###"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RestoreBoard(&BoardSnapshot{SerializedBoard: tc.board})
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("RestoreBoard(%q) = %v, want ErrInvalidConfiguration", tc.board, err)
			}
		})
	}
}

func TestLoadSnapshotRejectsGarbage(t *testing.T) {
	if _, err := LoadSnapshot("{not yaml: ["); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}

func TestViewMasksMinesUntilGameOver(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1, 0)}
	session := sessionOnLayout(t, clock, nil,
		"O###",
		"####",
		"###O",
	)

	if err := session.Activate(Point{X: 3, Y: 0}); err != nil {
		t.Fatal(err)
	}

	view := session.View()
	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			cell := view.Cells[y][x]
			if cell.State != Revealed && cell.Mine {
				t.Errorf("hidden cell (%d, %d) leaks its mine", x, y)
			}
		}
	}

	// Losing exposes the layout.
	if err := session.Activate(Point{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}
	view = session.View()
	if !view.Cells[0][0].Mine || !view.Cells[0][0].LosingMine {
		t.Error("losing mine not visible after game over")
	}
	if !view.Cells[2][3].Mine {
		t.Error("remaining mine not visible after game over")
	}
}
