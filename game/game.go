package game

import (
	"fmt"
	"time"

	"github.com/termsweeper/termsweeper/util/collections"
)

// Recorder receives one completed-game record per terminal transition.
// Abandoned sessions record nothing.
type Recorder interface {
	Record(difficulty Difficulty, won bool, duration time.Duration)
}

// SessionConfig carries everything needed to start a session.
type SessionConfig struct {
	Difficulty Difficulty

	// Seed for mine placement. Zero means derive from the wall clock.
	Seed int64

	// Recorder to notify on win or loss. May be nil.
	Recorder Recorder

	// Clock overrides the session's time source. Nil means time.Now.
	Clock func() time.Time

	// Board to play instead of generating one, restored from a snapshot.
	// Its mines are already placed, so the first reveal carries no safety
	// guarantee.
	Board *Board
}

// Session is one game of Minesweeper: a board plus the surrounding state
// machine, timing and move accounting. It performs no I/O; the
// presentation layer drives it through Activate, ToggleFlag and Chord and
// reads it back through View, Status and Elapsed.
type Session struct {
	board      *Board
	difficulty Difficulty
	seed       int64

	status     Status
	startedAt  time.Time
	finishedAt time.Time
	moves      int

	recorder Recorder
	now      func() time.Time
}

// NewSession validates the difficulty and builds a session in the
// NotStarted state. The board stays empty until the first Activate.
func NewSession(config SessionConfig) (*Session, error) {
	session := &Session{
		difficulty: config.Difficulty,
		seed:       config.Seed,
		status:     NotStarted,
		recorder:   config.Recorder,
		now:        config.Clock,
	}
	if session.now == nil {
		session.now = time.Now
	}
	if session.seed == 0 {
		session.seed = session.now().UnixNano()
	}

	if config.Board != nil {
		session.board = config.Board
		session.difficulty = Custom(config.Board.Width(), config.Board.Height(), config.Board.NumMines())
		return session, nil
	}

	board, err := NewBoard(config.Difficulty.Width, config.Difficulty.Height, config.Difficulty.NumMines)
	if err != nil {
		return nil, err
	}
	session.board = board
	return session, nil
}

func (session *Session) Status() Status {
	return session.status
}

func (session *Session) Difficulty() Difficulty {
	return session.difficulty
}

// Seed returns the placement seed, for replays.
func (session *Session) Seed() int64 {
	return session.seed
}

// FlagsPlaced returns the number of cells currently flagged.
func (session *Session) FlagsPlaced() int {
	return session.board.NumFlags()
}

// MoveCount returns the number of accepted mutating commands so far.
func (session *Session) MoveCount() int {
	return session.moves
}

// Elapsed returns the running play duration. It is zero before the first
// reveal and frozen once the session finishes.
func (session *Session) Elapsed() time.Duration {
	switch session.status {
	case NotStarted:
		return 0
	case InProgress:
		return session.now().Sub(session.startedAt)
	default:
		return session.finishedAt.Sub(session.startedAt)
	}
}

// Activate reveals the cell at p. On the first activation it places the
// mines, excluding p and its neighbors so the first reveal is always safe,
// starts the clock and moves the session to InProgress. Revealing a mine
// loses the game and exposes every mine; clearing the last safe cell wins
// it and auto-flags the remaining mines.
func (session *Session) Activate(p Point) error {
	if session.status.Finished() {
		return fmt.Errorf("%w: cannot activate %v", ErrGameOver, p)
	}

	cell := session.board.CellAt(p.X, p.Y)
	if cell == nil {
		return fmt.Errorf("%w: %v is outside the %dx%d board",
			ErrIllegalState, p, session.board.Width(), session.board.Height())
	}

	if session.status == NotStarted {
		if err := session.start(cell); err != nil {
			return err
		}
	}

	session.moves++
	session.revealCell(cell)
	return nil
}

// start performs the deferred mine placement and opens the clock. The
// activated cell and its whole neighborhood are kept mine-free; on boards
// too dense for that, the exclusion shrinks to the activated cell alone.
func (session *Session) start(origin *Cell) error {
	if !session.board.Placed() {
		excluded := collections.NewSet(origin.Point())
		for _, neighbor := range origin.Neighbors() {
			excluded.Add(neighbor.Point())
		}

		err := session.board.PlaceMines(excluded, session.seed)
		if err != nil {
			err = session.board.PlaceMines(collections.NewSet(origin.Point()), session.seed)
		}
		if err != nil {
			return err
		}
	}

	session.status = InProgress
	session.startedAt = session.now()
	return nil
}

// revealCell runs one reveal against an InProgress board and applies any
// resulting terminal transition.
func (session *Session) revealCell(cell *Cell) {
	if cell.IsMarked() || cell.IsRevealed() {
		return
	}

	if cell.IsMine() {
		cell.reveal()
		cell.isLosingMine = true
		session.board.exposeMines()
		session.finish(Lost)
		return
	}

	floodReveal(session.board, cell)

	if session.board.cleared() {
		session.board.flagRemainingMines()
		session.finish(Won)
	}
}

// ToggleFlag cycles the marking of the cell at p: Hidden -> Flagged ->
// Questioned -> Hidden. Revealed cells are unaffected. Only valid while a
// game is in progress.
func (session *Session) ToggleFlag(p Point) error {
	if session.status.Finished() {
		return fmt.Errorf("%w: cannot flag %v", ErrGameOver, p)
	}
	if session.status == NotStarted {
		return fmt.Errorf("%w: no reveal has started the game yet", ErrIllegalState)
	}

	cell := session.board.CellAt(p.X, p.Y)
	if cell == nil {
		return fmt.Errorf("%w: %v is outside the %dx%d board",
			ErrIllegalState, p, session.board.Width(), session.board.Height())
	}
	if cell.IsRevealed() {
		return nil
	}

	session.moves++
	cell.cycleMark()
	return nil
}

// Chord activates all unmarked hidden neighbors of a revealed numbered
// cell whose flag count matches its number. A misplaced flag makes a chord
// lose the game, exactly as the individual reveals would.
func (session *Session) Chord(p Point) error {
	if session.status.Finished() {
		return fmt.Errorf("%w: cannot chord %v", ErrGameOver, p)
	}
	if session.status == NotStarted {
		return fmt.Errorf("%w: no reveal has started the game yet", ErrIllegalState)
	}

	cell := session.board.CellAt(p.X, p.Y)
	if cell == nil {
		return fmt.Errorf("%w: %v is outside the %dx%d board",
			ErrIllegalState, p, session.board.Width(), session.board.Height())
	}
	if !cell.IsRevealed() || cell.NumMines() == 0 {
		return nil
	}

	numFlagged := uint8(0)
	for _, neighbor := range cell.Neighbors() {
		if neighbor.State() == Flagged {
			numFlagged++
		}
	}
	if numFlagged != cell.NumMines() {
		return nil
	}

	session.moves++
	for _, neighbor := range cell.Neighbors() {
		session.revealCell(neighbor)
		if session.status.Finished() {
			break
		}
	}
	return nil
}

func (session *Session) finish(status Status) {
	session.status = status
	session.finishedAt = session.now()

	if session.recorder != nil {
		session.recorder.Record(session.difficulty, status == Won, session.Elapsed())
	}
}
