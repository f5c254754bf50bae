package core

import "errors"

// Sentinel errors, checked with errors.Is.
var (
	// ErrOutOfRange indicates a coordinate outside the 8x8 board.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrIllegalMove indicates a move the game authority refuses.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNothingToUndo indicates a side has no earlier position to return to.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrGameOver indicates a move was requested after the game ended.
	ErrGameOver = errors.New("game over")

	// ErrInputClosed indicates the input stream failed or ended.
	// It is the only unrecoverable condition of the console.
	ErrInputClosed = errors.New("failed to read input")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)
