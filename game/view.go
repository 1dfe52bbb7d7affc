package game

// CellView is the read-only projection of one cell handed to the
// presentation layer. Mine and LosingMine stay false on hidden cells until
// the game is over, so a renderer cannot leak the layout.
type CellView struct {
	State      CellState
	Number     uint8 // adjacent mines; meaningful once revealed
	Mine       bool
	LosingMine bool
	WrongFlag  bool
}

// BoardView is a full read-only snapshot of the board.
type BoardView struct {
	Width, Height int
	MinesLeft     int // mine count minus flags placed; may go negative
	Cells         [][]CellView
}

// View snapshots the board for rendering. The mine layout is masked unless
// a cell is revealed or the session has finished.
func (session *Session) View() BoardView {
	board := session.board
	over := session.status.Finished()

	view := BoardView{
		Width:     board.width,
		Height:    board.height,
		MinesLeft: board.numMines - board.numFlags,
		Cells:     make([][]CellView, board.height),
	}

	for y := 0; y < board.height; y++ {
		row := make([]CellView, board.width)
		view.Cells[y] = row

		for x := 0; x < board.width; x++ {
			cell := &board.cells[y][x]
			cellView := CellView{
				State:  cell.state,
				Number: cell.numMines,
			}
			if cell.state == Revealed || over {
				cellView.Mine = cell.isMine
				cellView.LosingMine = cell.isLosingMine
				cellView.WrongFlag = cell.wrongFlag
			}
			row[x] = cellView
		}
	}

	return view
}
