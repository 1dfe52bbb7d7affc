package game

import (
	"github.com/gammazero/deque"

	"github.com/termsweeper/termsweeper/util/collections"
)

// floodReveal reveals origin and cascades outward through the connected
// region of zero-count cells, also revealing the numbered cells bordering
// the region. It uses an explicit work queue with a visited set, so each
// cell is enqueued at most once and the walk terminates on any board.
// Marked and already-revealed cells are skipped. The returned slice holds
// the newly revealed cells.
//
// Callers are expected to have handled mines: revealing a mine is a loss,
// not a cascade, and is decided before the flood starts.
func floodReveal(board *Board, origin *Cell) []*Cell {
	visited := make(collections.Set[Point])
	queue := deque.New[*Cell]()
	revealed := make([]*Cell, 0)

	enqueue := func(cell *Cell) {
		if visited.Contains(cell.Point()) {
			return
		}
		visited.Add(cell.Point())
		queue.PushBack(cell)
	}

	enqueue(origin)

	for queue.Len() > 0 {
		cell := queue.PopFront()
		if cell.state != Hidden {
			continue
		}

		cell.reveal()
		revealed = append(revealed, cell)

		if cell.numMines > 0 {
			continue
		}
		for _, neighbor := range cell.Neighbors() {
			if neighbor.state == Hidden {
				enqueue(neighbor)
			}
		}
	}

	return revealed
}
