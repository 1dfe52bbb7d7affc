package game

import (
	"fmt"
	"math/rand"

	"github.com/termsweeper/termsweeper/util/collections"
)

type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         [][]Cell

	placed     bool
	numFlags   int
	safeHidden int // non-mine cells still hidden; zero means the board is cleared
}

// NewBoard builds an empty board. Mines are not placed until the first
// reveal, via PlaceMines, so that the first activated cell can be excluded.
func NewBoard(width, height, numMines int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board must have positive dimensions, got %dx%d",
			ErrInvalidConfiguration, width, height)
	}
	if numMines <= 0 || numMines >= width*height {
		return nil, fmt.Errorf("%w: %d mines do not fit a %dx%d board",
			ErrInvalidConfiguration, numMines, width, height)
	}

	board := &Board{
		width:    width,
		height:   height,
		numMines: numMines,
		cells:    make([][]Cell, height),
	}

	for y := 0; y < height; y++ {
		row := make([]Cell, width)
		board.cells[y] = row

		for x := 0; x < width; x++ {
			cell := &board.cells[y][x]
			cell.board = board
			cell.x, cell.y = x, y
			cell.state = Hidden
		}
	}

	return board, nil
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

// NumFlags returns the number of cells currently flagged.
func (board *Board) NumFlags() int {
	return board.numFlags
}

// Placed reports whether mines have been placed yet.
func (board *Board) Placed() bool {
	return board.placed
}

// CellAt returns the cell at (x, y), or nil if outside board bounds.
func (board *Board) CellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < board.width && y < board.height {
		return &board.cells[y][x]
	}
	return nil
}

// PlaceMines scatters the board's mines uniformly across all cells not in
// excluded, seeding the shuffle with seed, and computes every cell's
// adjacent-mine count. It may run at most once per board.
func (board *Board) PlaceMines(excluded collections.Set[Point], seed int64) error {
	if board.placed {
		return fmt.Errorf("%w: mines already placed", ErrIllegalState)
	}

	pool := make([]*Cell, 0, board.NumCells()-excluded.Len())
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			cell := &board.cells[y][x]
			if !excluded.Contains(cell.Point()) {
				pool = append(pool, cell)
			}
		}
	}

	if board.numMines > len(pool) {
		return fmt.Errorf("%w: %d mines cannot avoid %d excluded cells on a %dx%d board",
			ErrInvalidConfiguration, board.numMines, excluded.Len(), board.width, board.height)
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for _, cell := range pool[:board.numMines] {
		cell.isMine = true
		for _, neighbor := range cell.Neighbors() {
			neighbor.numMines++
		}
	}

	board.placed = true
	board.safeHidden = board.NumCells() - board.numMines
	return nil
}

// cleared reports whether every non-mine cell has been revealed.
func (board *Board) cleared() bool {
	return board.placed && board.safeHidden == 0
}

// exposeMines reveals every mine for the end-of-loss display and marks
// flags sitting on non-mine cells as wrong.
func (board *Board) exposeMines() {
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			cell := &board.cells[y][x]
			switch {
			case cell.isMine && cell.state != Revealed:
				cell.state = Revealed
			case !cell.isMine && cell.IsMarked():
				cell.wrongFlag = true
			}
		}
	}
}

// flagRemainingMines flags every unflagged mine, for the end-of-win display.
func (board *Board) flagRemainingMines() {
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			cell := &board.cells[y][x]
			if cell.isMine {
				cell.setFlagged()
			}
		}
	}
}
