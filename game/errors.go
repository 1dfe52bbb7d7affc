package game

import "errors"

var (
	// ErrInvalidConfiguration means the requested board parameters are
	// inconsistent (zero-sized board, too many mines for the space).
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrIllegalState means the caller invoked an operation that is not
	// valid for the current state machine state, such as placing mines
	// twice or flagging before the first reveal.
	ErrIllegalState = errors.New("operation not valid in current state")

	// ErrGameOver means a mutating action was attempted on a session that
	// has already finished.
	ErrGameOver = errors.New("game is over")
)
