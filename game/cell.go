package game

import "fmt"

// Point identifies a cell position on the board, zero-indexed from the
// top-left corner.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

type Cell struct {
	board *Board

	x, y     int
	isMine   bool
	numMines uint8 // adjacent mines, fixed once placement has run

	state CellState

	// isLosingMine marks the mine whose reveal ended the game.
	isLosingMine bool
	// wrongFlag marks a flagged non-mine cell, set when the loss display
	// exposes the board.
	wrongFlag bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%d, %d)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) Point() Point {
	return Point{X: cell.x, Y: cell.y}
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

// NumMines returns the number of mines among the cell's up-to-8 neighbors.
// Zero until placement has run.
func (cell *Cell) NumMines() uint8 {
	return cell.numMines
}

func (cell *Cell) State() CellState {
	return cell.state
}

func (cell *Cell) IsRevealed() bool {
	return cell.state == Revealed
}

// IsMarked reports whether the cell is flagged or questioned. Marked cells
// cannot be revealed until the mark is cycled off.
func (cell *Cell) IsMarked() bool {
	return cell.state == Flagged || cell.state == Questioned
}

var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the cell's neighboring cells, clipped to board bounds.
func (cell *Cell) Neighbors() []*Cell {
	neighbors := make([]*Cell, 0, 8)
	for _, offset := range neighborOffsets {
		if neighbor := cell.board.CellAt(cell.x+offset.X, cell.y+offset.Y); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// reveal transitions the cell to Revealed and keeps the board's
// safe-cell accounting current. No-op unless the cell is Hidden.
func (cell *Cell) reveal() {
	if cell.state != Hidden {
		return
	}
	cell.state = Revealed
	if !cell.isMine {
		cell.board.safeHidden--
	}
}

// cycleMark advances Hidden -> Flagged -> Questioned -> Hidden. Revealed
// cells are left alone.
func (cell *Cell) cycleMark() {
	switch cell.state {
	case Hidden:
		cell.state = Flagged
		cell.board.numFlags++
	case Flagged:
		cell.state = Questioned
		cell.board.numFlags--
	case Questioned:
		cell.state = Hidden
	}
}

func (cell *Cell) setFlagged() {
	if cell.state == Hidden || cell.state == Questioned {
		cell.state = Flagged
		cell.board.numFlags++
	}
}
