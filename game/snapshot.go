package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is the serialized form of a finished (or in-flight) board,
// one rune per cell:
//
//	*  the mine whose reveal lost the game
//	F  flagged mine
//	O  mine, neither flagged nor hit
//	f  flag on a non-mine cell
//	?  question mark
//	.  revealed safe cell
//	#  hidden safe cell
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Difficulty      string `yaml:"difficulty"`
	SerializedBoard string `yaml:"board,flow"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		// A snapshot is plain strings and ints; marshalling cannot fail.
		panic(err)
	}
	return string(out)
}

// LoadSnapshot parses a serialized snapshot.
func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("parsing board snapshot: %w", err)
	}
	return &snapshot, nil
}

// Snapshot serializes the session's board.
func (session *Session) Snapshot() *BoardSnapshot {
	board := session.board
	var builder strings.Builder

	for y := 0; y < board.height; y++ {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for x := 0; x < board.width; x++ {
			builder.WriteByte(board.cells[y][x].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            session.seed,
		Difficulty:      session.difficulty.Name,
		SerializedBoard: builder.String(),
	}
}

func (cell *Cell) serialize() byte {
	switch {
	case cell.isLosingMine:
		return '*'
	case cell.isMine && cell.state == Flagged:
		return 'F'
	case cell.isMine:
		return 'O'
	case cell.state == Flagged:
		return 'f'
	case cell.state == Questioned:
		return '?'
	case cell.state == Revealed:
		return '.'
	default:
		return '#'
	}
}

// RestoreBoard rebuilds a fresh board from a snapshot: the recorded mine
// layout with every cell hidden, ready to be replayed. The restored board
// counts as placed, so a session using it skips deferred placement and the
// first reveal is not guaranteed safe.
func RestoreBoard(snapshot *BoardSnapshot) (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	height := len(rows)
	if height == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: snapshot holds an empty board", ErrInvalidConfiguration)
	}
	width := len(rows[0])

	numMines := 0
	for _, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: snapshot rows have uneven widths", ErrInvalidConfiguration)
		}
		numMines += strings.Count(row, "*") + strings.Count(row, "F") + strings.Count(row, "O")
	}

	board, err := NewBoard(width, height, numMines)
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		for x := 0; x < width; x++ {
			switch row[x] {
			case '*', 'F', 'O':
				cell := board.CellAt(x, y)
				cell.isMine = true
				for _, neighbor := range cell.Neighbors() {
					neighbor.numMines++
				}
			case 'f', '?', '.', '#':
				// safe cell markings; the restored board starts hidden
			default:
				return nil, fmt.Errorf("%w: unknown cell rune %q in snapshot",
					ErrInvalidConfiguration, row[x])
			}
		}
	}

	board.placed = true
	board.safeHidden = board.NumCells() - numMines
	return board, nil
}
