package game

// CellState tracks a single cell through its marking lifecycle. Revealed is
// terminal for a cell; Flagged and Questioned cycle back to Hidden.
type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
	Questioned
)

func (state CellState) String() string {
	switch state {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Questioned:
		return "questioned"
	}
	return "unknown"
}

// Status is the session state machine. Won and Lost are terminal.
type Status int

const (
	NotStarted Status = iota
	InProgress
	Won
	Lost
)

func (status Status) String() string {
	switch status {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Finished reports whether the status is terminal.
func (status Status) Finished() bool {
	return status == Won || status == Lost
}

// Difficulty names a board size and mine count.
type Difficulty struct {
	Name     string
	Width    int
	Height   int
	NumMines int
}

var (
	Beginner     = Difficulty{Name: "beginner", Width: 9, Height: 9, NumMines: 10}
	Intermediate = Difficulty{Name: "intermediate", Width: 16, Height: 16, NumMines: 40}
	Expert       = Difficulty{Name: "expert", Width: 30, Height: 16, NumMines: 99}
)

// Difficulties lists the named modes in menu order.
var Difficulties = []Difficulty{Beginner, Intermediate, Expert}

// Custom builds an ad-hoc difficulty. Dimensions are validated when the
// board is created, not here.
func Custom(width, height, numMines int) Difficulty {
	return Difficulty{Name: "custom", Width: width, Height: height, NumMines: numMines}
}
